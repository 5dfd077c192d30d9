// Package value models the runtime values that annotation defaults are built from.
package value

import (
	"fmt"
	"github.com/cottand/annot/strpool"
	"log/slog"
	"strconv"
)

// DataType is the runtime type tag of a TypedValue.
//
// Persistent variants hold static data (never refcounted or freed).
type DataType int8

const (
	Uninit DataType = iota
	Null
	Boolean
	Int64
	Double
	PersistentString
	String
	PersistentArray
	Array
	PersistentDArray
	DArray
	PersistentVArray
	VArray
	PersistentVec
	Vec
	PersistentDict
	Dict
	PersistentKeyset
	Keyset
	Object
	Resource
	Record
)

var dataTypeNames = [...]string{
	Uninit:           "Uninit",
	Null:             "Null",
	Boolean:          "Boolean",
	Int64:            "Int64",
	Double:           "Double",
	PersistentString: "PersistentString",
	String:           "String",
	PersistentArray:  "PersistentArray",
	Array:            "Array",
	PersistentDArray: "PersistentDArray",
	DArray:           "DArray",
	PersistentVArray: "PersistentVArray",
	VArray:           "VArray",
	PersistentVec:    "PersistentVec",
	Vec:              "Vec",
	PersistentDict:   "PersistentDict",
	Dict:             "Dict",
	PersistentKeyset: "PersistentKeyset",
	Keyset:           "Keyset",
	Object:           "Object",
	Resource:         "Resource",
	Record:           "Record",
}

func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "DataType(" + strconv.Itoa(int(dt)) + ")"
	}
	return dataTypeNames[dt]
}

// TypedValue is a tagged runtime value. Only the field matching Type is meaningful:
// Num for Boolean and Int64, Dbl for Double, Str for strings, Arr for every array-like type.
type TypedValue struct {
	Type DataType
	Num  int64
	Dbl  float64
	Str  *strpool.StringData
	Arr  *ArrayData
}

func MakeUninit() TypedValue {
	return TypedValue{Type: Uninit}
}

func MakeNull() TypedValue {
	return TypedValue{Type: Null}
}

func MakeBool(b bool) TypedValue {
	tv := TypedValue{Type: Boolean}
	if b {
		tv.Num = 1
	}
	return tv
}

func MakeInt(n int64) TypedValue {
	return TypedValue{Type: Int64, Num: n}
}

func MakeDouble(d float64) TypedValue {
	return TypedValue{Type: Double, Dbl: d}
}

// MakePersistentString wraps an interned string.
func MakePersistentString(s *strpool.StringData) TypedValue {
	if s == nil {
		panic("MakePersistentString: nil string")
	}
	return TypedValue{Type: PersistentString, Str: s}
}

// MakePersistentArrayLike picks the persistent DataType matching the shape of a, which must be static.
func MakePersistentArrayLike(a *ArrayData) TypedValue {
	if a == nil || !a.IsStatic() {
		panic("MakePersistentArrayLike: array is not static")
	}
	return TypedValue{Type: a.persistentType(), Arr: a}
}

// Bool is only meaningful when tv is a Boolean
func (tv TypedValue) Bool() bool {
	return tv.Num != 0
}

// Format renders tv the way the CLI prints defaults, e.g. int(0) or vec[].
func (tv TypedValue) Format() string {
	switch tv.Type {
	case Uninit:
		return "uninit"
	case Null:
		return "null"
	case Boolean:
		return fmt.Sprintf("bool(%t)", tv.Bool())
	case Int64:
		return fmt.Sprintf("int(%d)", tv.Num)
	case Double:
		return "float(" + strconv.FormatFloat(tv.Dbl, 'g', -1, 64) + ")"
	case PersistentString, String:
		return fmt.Sprintf("string(%q)", tv.Str.String())
	case PersistentArray, Array, PersistentDArray, DArray, PersistentVArray, VArray,
		PersistentVec, Vec, PersistentDict, Dict, PersistentKeyset, Keyset:
		return fmt.Sprintf("%s[%d]", tv.Arr.ShapeName(), tv.Arr.Size())
	default:
		return tv.Type.String()
	}
}

func (tv TypedValue) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", tv.Type.String()),
		slog.String("value", tv.Format()),
	)
}
