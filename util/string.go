package util

// EqualFoldASCII reports whether a and b are equal when ASCII letters are folded to lower case.
//
// Unlike strings.EqualFold this does not apply Unicode case folding, so bytes outside
// of A-Z are compared exactly. Strings of different length are rejected without scanning.
func EqualFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if lowerASCII(ca) != lowerASCII(cb) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

const (
	fnvOffset32 = 2166136261
	fnvPrime32  = 16777619
)

// HashString returns the 32-bit FNV-1a hash of s.
//
// It is case-sensitive and does not allocate, so it can back lookups on hot paths.
func HashString(s string) uint32 {
	h := uint32(fnvOffset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime32
	}
	return h
}
