// Package annot classifies type annotations.
//
// It maps builtin type-hint names to a Category, tells which interfaces can be
// satisfied by non-object values, and builds the value a typed slot holds when
// it has no explicit default. Any name it does not know is a class or typedef
// name and is left to the caller.
package annot

import (
	"github.com/cottand/annot/util"
	"github.com/cottand/annot/value"
	"strconv"
)

type Category uint8

const (
	Null Category = iota
	Bool
	Int
	Float
	String
	Array
	Object
	Resource
	Dict
	Vec
	Keyset
	Record
	Mixed
	Self
	Parent
	Callable
	Number
	ArrayKey
	This
	VArray
	DArray
	VArrOrDArr
	VecOrDict
	ArrayLike
	Nonnull
	NoReturn
	Nothing

	numCategories
)

var categoryNames = [...]string{
	Null:       "null",
	Bool:       "bool",
	Int:        "int",
	Float:      "float",
	String:     "string",
	Array:      "array",
	Object:     "object",
	Resource:   "resource",
	Dict:       "dict",
	Vec:        "vec",
	Keyset:     "keyset",
	Record:     "record",
	Mixed:      "mixed",
	Self:       "self",
	Parent:     "parent",
	Callable:   "callable",
	Number:     "num",
	ArrayKey:   "arraykey",
	This:       "this",
	VArray:     "varray",
	DArray:     "darray",
	VArrOrDArr: "varray_or_darray",
	VecOrDict:  "vec_or_dict",
	ArrayLike:  "arraylike",
	Nonnull:    "nonnull",
	NoReturn:   "noreturn",
	Nothing:    "nothing",
}

// a category appended without a name fails to compile here
var _ [len(categoryNames) - int(numCategories)]struct{}
var _ [int(numCategories) - len(categoryNames)]struct{}

func (c Category) String() string {
	if c >= numCategories {
		return "Category(" + strconv.Itoa(int(c)) + ")"
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Category) Valid() bool {
	return c < numCategories
}

// AllCategories lists every category in declaration order
func AllCategories() []Category {
	all := make([]Category, 0, numCategories)
	for c := Category(0); c < numCategories; c++ {
		all = append(all, c)
	}
	return all
}

// ParseCategory accepts the String form of a category, ignoring ASCII case.
// It is meant for tooling; hint names go through ResolveText.
func ParseCategory(s string) (Category, bool) {
	for c, name := range categoryNames {
		if util.EqualFoldASCII(s, name) {
			return Category(c), true
		}
	}
	return 0, false
}

// MetaType tells whether a Category stands for exactly one runtime data type
// (Precise) or for a set of them that a type check must special-case.
type MetaType uint8

const (
	Precise MetaType = iota
	MixedMeta
	SelfMeta
	ParentMeta
	CallableMeta
	NumberMeta
	ArrayKeyMeta
	ThisMeta
	VArrayMeta
	DArrayMeta
	VArrOrDArrMeta
	VecOrDictMeta
	ArrayLikeMeta
	NonnullMeta
	NoReturnMeta
	NothingMeta
)

func (c Category) MetaType() MetaType {
	switch c {
	case Null, Bool, Int, Float, String, Array, Object, Resource, Dict, Vec, Keyset, Record:
		return Precise
	case Mixed:
		return MixedMeta
	case Self:
		return SelfMeta
	case Parent:
		return ParentMeta
	case Callable:
		return CallableMeta
	case Number:
		return NumberMeta
	case ArrayKey:
		return ArrayKeyMeta
	case This:
		return ThisMeta
	case VArray:
		return VArrayMeta
	case DArray:
		return DArrayMeta
	case VArrOrDArr:
		return VArrOrDArrMeta
	case VecOrDict:
		return VecOrDictMeta
	case ArrayLike:
		return ArrayLikeMeta
	case Nonnull:
		return NonnullMeta
	case NoReturn:
		return NoReturnMeta
	case Nothing:
		return NothingMeta
	}
	fatalf("MetaType: unhandled category %s", c)
	return 0
}

func (c Category) IsPrecise() bool {
	return c.MetaType() == Precise
}

// DataTypeOf is the runtime data type a Precise category checks for, and value.Uninit otherwise.
func DataTypeOf(c Category) value.DataType {
	switch c {
	case Null:
		return value.Null
	case Bool:
		return value.Boolean
	case Int:
		return value.Int64
	case Float:
		return value.Double
	case String:
		return value.PersistentString
	case Array:
		return value.PersistentArray
	case Object:
		return value.Object
	case Resource:
		return value.Resource
	case Dict:
		return value.PersistentDict
	case Vec:
		return value.PersistentVec
	case Keyset:
		return value.PersistentKeyset
	case Record:
		return value.Record
	}
	if !c.Valid() {
		fatalf("DataTypeOf: unhandled category %s", c)
	}
	return value.Uninit
}
