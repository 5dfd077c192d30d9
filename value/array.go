package value

// ArrayKind is the representation of an ArrayData
type ArrayKind uint8

const (
	// PlainKind is a legacy PHP array, optionally marked as a varray or darray
	PlainKind ArrayKind = iota
	VecKind
	DictKind
	KeysetKind
)

// DVMark is the legacy varray/darray marking carried by PlainKind arrays
type DVMark uint8

const (
	NoDV DVMark = iota
	VArrayDV
	DArrayDV
)

// ArrayData is an array-like container.
//
// The only instances this package hands out are the static empty singletons below,
// which are immutable and shared, so callers may compare them by pointer.
type ArrayData struct {
	kind   ArrayKind
	dv     DVMark
	static bool
	size   int
}

var (
	staticEmptyArray  = &ArrayData{kind: PlainKind, static: true}
	staticEmptyVArray = &ArrayData{kind: PlainKind, dv: VArrayDV, static: true}
	staticEmptyDArray = &ArrayData{kind: PlainKind, dv: DArrayDV, static: true}
	staticEmptyVec    = &ArrayData{kind: VecKind, static: true}
	staticEmptyDict   = &ArrayData{kind: DictKind, static: true}
	staticEmptyKeyset = &ArrayData{kind: KeysetKind, static: true}
)

func StaticEmptyArray() *ArrayData  { return staticEmptyArray }
func StaticEmptyVArray() *ArrayData { return staticEmptyVArray }
func StaticEmptyDArray() *ArrayData { return staticEmptyDArray }
func StaticEmptyVec() *ArrayData    { return staticEmptyVec }
func StaticEmptyDict() *ArrayData   { return staticEmptyDict }
func StaticEmptyKeyset() *ArrayData { return staticEmptyKeyset }

func (a *ArrayData) Kind() ArrayKind { return a.kind }
func (a *ArrayData) DV() DVMark      { return a.dv }
func (a *ArrayData) IsStatic() bool  { return a.static }
func (a *ArrayData) Size() int       { return a.size }
func (a *ArrayData) Empty() bool     { return a.size == 0 }

func (a *ArrayData) IsVArray() bool { return a.kind == PlainKind && a.dv == VArrayDV }
func (a *ArrayData) IsDArray() bool { return a.kind == PlainKind && a.dv == DArrayDV }

// ShapeName is the surface spelling of the array's representation
func (a *ArrayData) ShapeName() string {
	switch a.kind {
	case VecKind:
		return "vec"
	case DictKind:
		return "dict"
	case KeysetKind:
		return "keyset"
	}
	switch a.dv {
	case VArrayDV:
		return "varray"
	case DArrayDV:
		return "darray"
	}
	return "array"
}

func (a *ArrayData) persistentType() DataType {
	switch a.kind {
	case VecKind:
		return PersistentVec
	case DictKind:
		return PersistentDict
	case KeysetKind:
		return PersistentKeyset
	}
	switch a.dv {
	case VArrayDV:
		return PersistentVArray
	case DArrayDV:
		return PersistentDArray
	}
	return PersistentArray
}
