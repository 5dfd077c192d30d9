package annot

import (
	"github.com/cottand/annot/strpool"
	"github.com/cottand/annot/value"
)

func zeroInt() value.TypedValue    { return value.MakeInt(0) }
func falseBool() value.TypedValue  { return value.MakeBool(false) }
func zeroDouble() value.TypedValue { return value.MakeDouble(0) }
func emptyString() value.TypedValue {
	return value.MakePersistentString(strpool.Empty())
}

func emptyArrayLike(static func() *value.ArrayData) func() value.TypedValue {
	return func() value.TypedValue {
		return value.MakePersistentArrayLike(static())
	}
}

// defaultPolicies is keyed by category; every category needs an entry
var defaultPolicies = [...]func() value.TypedValue{
	Null:       value.MakeNull,
	Bool:       falseBool,
	Int:        zeroInt,
	Float:      zeroDouble,
	String:     emptyString,
	Array:      emptyArrayLike(value.StaticEmptyArray),
	Object:     value.MakeNull,
	Resource:   value.MakeNull,
	Dict:       emptyArrayLike(value.StaticEmptyDict),
	Vec:        emptyArrayLike(value.StaticEmptyVec),
	Keyset:     emptyArrayLike(value.StaticEmptyKeyset),
	Record:     value.MakeNull,
	Mixed:      value.MakeNull,
	Self:       value.MakeNull,
	Parent:     value.MakeNull,
	Callable:   value.MakeNull,
	Number:     zeroInt,
	ArrayKey:   zeroInt,
	This:       value.MakeNull,
	VArray:     emptyArrayLike(value.StaticEmptyVArray),
	DArray:     emptyArrayLike(value.StaticEmptyDArray),
	VArrOrDArr: emptyArrayLike(value.StaticEmptyVArray),
	VecOrDict:  emptyArrayLike(value.StaticEmptyVec),
	ArrayLike:  emptyArrayLike(value.StaticEmptyVec),
	Nonnull:    zeroInt,
	NoReturn:   value.MakeNull,
	Nothing:    value.MakeNull,
}

// a category appended without a default policy fails to compile here
var _ [len(defaultPolicies) - int(numCategories)]struct{}
var _ [int(numCategories) - len(defaultPolicies)]struct{}

// DefaultValue is the value a slot annotated with c holds when it has no explicit default.
//
// Strings and array-likes are the shared static empty instances, so two calls for the
// same category return the same *ArrayData or *StringData.
func DefaultValue(c Category) value.TypedValue {
	if !c.Valid() || defaultPolicies[c] == nil {
		fatalf("DefaultValue: no default for category %s", c)
	}
	return defaultPolicies[c]()
}
