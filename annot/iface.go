package annot

import (
	"github.com/cottand/annot/strpool"
	"github.com/cottand/annot/util"
	"github.com/hashicorp/go-set/v3"
)

// Interfaces that builtin scalars and arrays implement structurally, so a hint naming
// one of them can be satisfied without wrapping the value in an object.
const (
	traversableName      = `HH\Traversable`
	rxTraversableName    = `HH\Rx\Traversable`
	keyedTraversableName = `HH\KeyedTraversable`
	rxKeyedTraversable   = `HH\Rx\KeyedTraversable`
	containerName        = `HH\Container`
	keyedContainerName   = `HH\KeyedContainer`
	xhpChildName         = `XHPChild`
	stringishName        = `Stringish`
)

var (
	arrayLikeInterfaces = []string{
		traversableName,
		keyedTraversableName,
		rxTraversableName,
		rxKeyedTraversable,
		containerName,
		keyedContainerName,
		xhpChildName,
	}
	stringInterfaces = []string{xhpChildName, stringishName}
	intInterfaces    = []string{xhpChildName}
	doubleInterfaces = []string{xhpChildName}
)

func matchesAny(name string, interfaces []string) bool {
	for _, iface := range interfaces {
		if util.EqualFoldASCII(name, iface) {
			return true
		}
	}
	return false
}

// SupportsArrayLike reports whether arrays and hack arrays satisfy the interface.
// Like all Supports* functions it ignores ASCII case.
func SupportsArrayLike(name string) bool {
	return matchesAny(name, arrayLikeInterfaces)
}

func SupportsString(name string) bool {
	return matchesAny(name, stringInterfaces)
}

func SupportsInt(name string) bool {
	return matchesAny(name, intInterfaces)
}

func SupportsDouble(name string) bool {
	return matchesAny(name, doubleInterfaces)
}

// SupportsNonObject reports whether any non-object value may satisfy the interface
func SupportsNonObject(name string) bool {
	return SupportsArrayLike(name) || util.EqualFoldASCII(name, stringishName)
}

func SupportsArrayLikeHandle(name *strpool.StringData) bool {
	return SupportsArrayLike(name.String())
}

func SupportsStringHandle(name *strpool.StringData) bool {
	return SupportsString(name.String())
}

func SupportsIntHandle(name *strpool.StringData) bool {
	return SupportsInt(name.String())
}

func SupportsDoubleHandle(name *strpool.StringData) bool {
	return SupportsDouble(name.String())
}

func SupportsNonObjectHandle(name *strpool.StringData) bool {
	return SupportsNonObject(name.String())
}

// Capabilities is every Supports* answer for one interface name
type Capabilities struct {
	ArrayLike bool `yaml:"arraylike"`
	String    bool `yaml:"string"`
	Int       bool `yaml:"int"`
	Double    bool `yaml:"double"`
	NonObject bool `yaml:"nonobject"`
}

func CapabilitiesOf(name string) Capabilities {
	return Capabilities{
		ArrayLike: SupportsArrayLike(name),
		String:    SupportsString(name),
		Int:       SupportsInt(name),
		Double:    SupportsDouble(name),
		NonObject: SupportsNonObject(name),
	}
}

// InterfaceNames is the set of every interface with a non-object capability,
// spelled canonically.
func InterfaceNames() *set.Set[string] {
	names := set.From(arrayLikeInterfaces)
	names.InsertSlice(stringInterfaces)
	names.InsertSlice(intInterfaces)
	names.InsertSlice(doubleInterfaces)
	return names
}
