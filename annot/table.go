package annot

import (
	"cmp"
	"github.com/benbjohnson/immutable"
	"github.com/cottand/annot/internal/config"
	"github.com/cottand/annot/strpool"
	"github.com/cottand/annot/util"
	"github.com/cottand/annot/value"
	"slices"
	"sync"
	"sync/atomic"
)

// Entry is one builtin hint name and the category it resolves to
type Entry struct {
	Name     string   `yaml:"name"`
	Category Category `yaml:"category"`
}

// entries is the authoritative list of hints that need special handling.
// Any hint not on it is a class name.
func entries(hackArrDVArrs bool) []Entry {
	varray, darray, varrOrDArr := VArray, DArray, VArrOrDArr
	if hackArrDVArrs {
		varray, darray, varrOrDArr = Vec, Dict, VecOrDict
	}
	return []Entry{
		{`HH\nothing`, Nothing},
		{`HH\noreturn`, NoReturn},
		{`HH\null`, Null},
		{`HH\void`, Null},
		{`HH\bool`, Bool},
		{`HH\int`, Int},
		{`HH\float`, Float},
		{`HH\string`, String},
		{`array`, Array},
		{`HH\resource`, Resource},
		{`HH\mixed`, Mixed},
		{`HH\nonnull`, Nonnull},
		{`HH\num`, Number},
		{`HH\arraykey`, ArrayKey},
		{`HH\this`, This},
		{`self`, Self},
		{`parent`, Parent},
		{`callable`, Callable},
		{`HH\dict`, Dict},
		{`HH\vec`, Vec},
		{`HH\keyset`, Keyset},
		{`HH\varray`, varray},
		{`HH\darray`, darray},
		{`HH\varray_or_darray`, varrOrDArr},
		{`HH\vec_or_dict`, VecOrDict},
		{`HH\arraylike`, ArrayLike},
	}
}

type textHasher struct{}

func (textHasher) Hash(s string) uint32   { return util.HashString(s) }
func (textHasher) Equal(a, b string) bool { return a == b }

// handleTable and textTable hold the same entries but are kept apart:
// only the text path guarantees it never yields Object.
type handleTable struct {
	m *immutable.Map[*strpool.StringData, Category]
}

type textTable struct {
	m *immutable.Map[string, Category]
}

// Table resolves hint names. It is immutable once built and safe for concurrent use.
type Table struct {
	byHandle      handleTable
	byText        textTable
	hackArrDVArrs bool
	pool          *strpool.Pool
}

// NewTable builds a table for the given array representation mode.
// Handles passed to ResolveHandle must come from pool.
func NewTable(opts config.Options, pool *strpool.Pool) *Table {
	return buildTable(entries(opts.HackArrDVArrs), opts.HackArrDVArrs, pool)
}

// buildTable fills both maps in a single pass over es
func buildTable(es []Entry, hackArrDVArrs bool, pool *strpool.Pool) *Table {
	hb := immutable.NewMapBuilder[*strpool.StringData, Category](strpool.HandleHasher{})
	tb := immutable.NewMapBuilder[string, Category](textHasher{})
	for _, e := range es {
		hb.Set(pool.Intern(e.Name), e.Category)
		tb.Set(e.Name, e.Category)
	}
	t := &Table{
		byHandle:      handleTable{m: hb.Map()},
		byText:        textTable{m: tb.Map()},
		hackArrDVArrs: hackArrDVArrs,
		pool:          pool,
	}
	logger.Debug("built annotation table", "hackArrDVArrs", t.hackArrDVArrs, "size", t.Len())
	return t
}

func (t *Table) ResolveHandle(name *strpool.StringData) (Category, bool) {
	if name == nil {
		fatalf("ResolveHandle: nil name")
	}
	return t.byHandle.m.Get(name)
}

// ResolveText is case-sensitive and never yields Object.
func (t *Table) ResolveText(name string) (Category, bool) {
	c, ok := t.byText.m.Get(name)
	if ok && c == Object {
		fatalf("ResolveText: %q resolved to object", name)
	}
	return c, ok
}

func (t *Table) HackArrDVArrs() bool {
	return t.hackArrDVArrs
}

func (t *Table) Pool() *strpool.Pool {
	return t.pool
}

func (t *Table) Len() int {
	return t.byText.m.Len()
}

// Entries returns the table contents sorted by name
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, t.Len())
	itr := t.byText.m.Iterator()
	for !itr.Done() {
		name, c, _ := itr.Next()
		out = append(out, Entry{Name: name, Category: c})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// lazyTable builds its Table on first load. opts is read exactly once, by the
// build; later changes to the options do not affect the table.
type lazyTable struct {
	load   func() *Table
	builds atomic.Int32
}

func newLazyTable(opts func() config.Options, pool *strpool.Pool) *lazyTable {
	lt := &lazyTable{}
	lt.load = sync.OnceValue(func() *Table {
		lt.builds.Add(1)
		return NewTable(opts(), pool)
	})
	return lt
}

var processTable = newLazyTable(config.Current, strpool.Global())

// ProcessTable returns the process-wide table, building it on first use.
func ProcessTable() *Table {
	return processTable.load()
}

// ResolveHandle resolves an interned hint name from strpool.Global.
// ok is false for names that are not builtin hints.
func ResolveHandle(name *strpool.StringData) (Category, bool) {
	return processTable.load().ResolveHandle(name)
}

// ResolveText resolves a hint name, case-sensitively.
// ok is false for names that are not builtin hints. It never yields Object.
func ResolveText(name string) (Category, bool) {
	return processTable.load().ResolveText(name)
}

// Entries lists the process-wide table sorted by name
func Entries() []Entry {
	return processTable.load().Entries()
}

// MaybeDataTypeByText is DataTypeOf the category name resolves to.
// Non-precise categories give value.Uninit with ok set.
func MaybeDataTypeByText(name string) (value.DataType, bool) {
	c, ok := ResolveText(name)
	if !ok {
		return value.Uninit, false
	}
	return DataTypeOf(c), true
}

func MaybeDataTypeByHandle(name *strpool.StringData) (value.DataType, bool) {
	c, ok := ResolveHandle(name)
	if !ok {
		return value.Uninit, false
	}
	return DataTypeOf(c), true
}
