package annot

import (
	"github.com/cottand/annot/internal/config"
	"github.com/cottand/annot/strpool"
)

var LiteralEntries = entries

func BuildTable(es []Entry, pool *strpool.Pool) *Table {
	return buildTable(es, false, pool)
}

func ProcessTableBuilds() int32 {
	return processTable.builds.Load()
}

// NewLazyTable returns the loader of a fresh lazily built table and its build count
func NewLazyTable(opts func() config.Options, pool *strpool.Pool) (load func() *Table, builds func() int32) {
	lt := newLazyTable(opts, pool)
	return lt.load, lt.builds.Load
}

func HasDefaultPolicy(c Category) bool {
	return c.Valid() && defaultPolicies[c] != nil
}
