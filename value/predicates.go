package value

import (
	"fmt"
	"github.com/cottand/annot/internal/config"
)

func IsNullType(dt DataType) bool   { return dt == Uninit || dt == Null }
func IsBoolType(dt DataType) bool   { return dt == Boolean }
func IsIntType(dt DataType) bool    { return dt == Int64 }
func IsDoubleType(dt DataType) bool { return dt == Double }
func IsStringType(dt DataType) bool { return dt == PersistentString || dt == String }

// IsArrayType covers legacy arrays, including varrays and darrays
func IsArrayType(dt DataType) bool {
	return dt >= PersistentArray && dt <= VArray
}

func IsDArrayType(dt DataType) bool { return dt == PersistentDArray || dt == DArray }
func IsVArrayType(dt DataType) bool { return dt == PersistentVArray || dt == VArray }
func IsVecType(dt DataType) bool    { return dt == PersistentVec || dt == Vec }
func IsDictType(dt DataType) bool   { return dt == PersistentDict || dt == Dict }
func IsKeysetType(dt DataType) bool { return dt == PersistentKeyset || dt == Keyset }

func IsHackArrayType(dt DataType) bool {
	return IsVecType(dt) || IsDictType(dt) || IsKeysetType(dt)
}

func IsArrayLikeType(dt DataType) bool {
	return IsArrayType(dt) || IsHackArrayType(dt)
}

func IsObjectType(dt DataType) bool   { return dt == Object }
func IsResourceType(dt DataType) bool { return dt == Resource }
func IsRecordType(dt DataType) bool   { return dt == Record }

func IsNull(tv TypedValue) bool      { return IsNullType(tv.Type) }
func IsBool(tv TypedValue) bool      { return IsBoolType(tv.Type) }
func IsInt(tv TypedValue) bool       { return IsIntType(tv.Type) }
func IsDouble(tv TypedValue) bool    { return IsDoubleType(tv.Type) }
func IsString(tv TypedValue) bool    { return IsStringType(tv.Type) }
func IsArray(tv TypedValue) bool     { return IsArrayType(tv.Type) }
func IsDArray(tv TypedValue) bool    { return IsDArrayType(tv.Type) }
func IsVArray(tv TypedValue) bool    { return IsVArrayType(tv.Type) }
func IsArrayLike(tv TypedValue) bool { return IsArrayLikeType(tv.Type) }
func IsHackArray(tv TypedValue) bool { return IsHackArrayType(tv.Type) }
func IsVec(tv TypedValue) bool       { return IsVecType(tv.Type) }
func IsDict(tv TypedValue) bool      { return IsDictType(tv.Type) }
func IsKeyset(tv TypedValue) bool    { return IsKeysetType(tv.Type) }
func IsObject(tv TypedValue) bool    { return IsObjectType(tv.Type) }
func IsResource(tv TypedValue) bool  { return IsResourceType(tv.Type) }
func IsRecord(tv TypedValue) bool    { return IsRecordType(tv.Type) }

// IsVecOrVArray reads config.Current on every call:
// with HackArrDVArrs set only vecs qualify, otherwise only arrays marked as varrays.
func IsVecOrVArray(tv TypedValue) bool {
	if config.Current().HackArrDVArrs {
		return IsVec(tv)
	}
	return IsArray(tv) && tv.Arr.IsVArray()
}

// IsDictOrDArray is the darray counterpart of IsVecOrVArray
func IsDictOrDArray(tv TypedValue) bool {
	if config.Current().HackArrDVArrs {
		return IsDict(tv)
	}
	return IsArray(tv) && tv.Arr.IsDArray()
}

func AssertInt(tv TypedValue) int64 {
	if !IsInt(tv) {
		panic(fmt.Sprintf("AssertInt: value has type %s", tv.Type))
	}
	return tv.Num
}

func AssertDouble(tv TypedValue) float64 {
	if !IsDouble(tv) {
		panic(fmt.Sprintf("AssertDouble: value has type %s", tv.Type))
	}
	return tv.Dbl
}
