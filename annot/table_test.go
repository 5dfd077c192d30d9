package annot_test

import (
	"fmt"
	"github.com/cottand/annot/annot"
	"github.com/cottand/annot/internal/config"
	"github.com/cottand/annot/strpool"
	"github.com/cottand/annot/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestEveryLiteralResolves(t *testing.T) {
	for _, mode := range []bool{false, true} {
		t.Run(fmt.Sprint("hackArrDVArrs=", mode), func(t *testing.T) {
			pool := strpool.New()
			table := annot.NewTable(config.Options{HackArrDVArrs: mode}, pool)
			literal := annot.LiteralEntries(mode)
			assert.Equal(t, len(literal), table.Len())

			for _, e := range literal {
				byText, ok := table.ResolveText(e.Name)
				assert.True(t, ok, e.Name)
				assert.Equal(t, e.Category, byText, e.Name)

				byHandle, ok := table.ResolveHandle(pool.Intern(e.Name))
				assert.True(t, ok, e.Name)
				assert.Equal(t, e.Category, byHandle, e.Name)
			}
		})
	}
}

func TestLiteralSpotChecks(t *testing.T) {
	table := annot.NewTable(config.Options{}, strpool.New())
	cases := map[string]annot.Category{
		`HH\void`:      annot.Null,
		`HH\null`:      annot.Null,
		`HH\num`:       annot.Number,
		`array`:        annot.Array,
		`self`:         annot.Self,
		`callable`:     annot.Callable,
		`HH\noreturn`:  annot.NoReturn,
		`HH\arraylike`: annot.ArrayLike,
	}
	for name, want := range cases {
		got, ok := table.ResolveText(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
}

func TestUnknownNamesDoNotResolve(t *testing.T) {
	pool := strpool.New()
	table := annot.NewTable(config.Options{}, pool)
	names := []string{
		"",
		"Foo",
		`HH\Traversable`,
		"int",
		"object",
		`HH\object`,
		`HH\record`,
		// resolution is case-sensitive
		`HH\Int`,
		`hh\int`,
		"Array",
		"SELF",
		`HH\VEC`,
	}
	for _, name := range names {
		_, ok := table.ResolveText(name)
		assert.False(t, ok, name)
		_, ok = table.ResolveHandle(pool.Intern(name))
		assert.False(t, ok, name)
	}
}

func TestModeDependentEntries(t *testing.T) {
	cases := []struct {
		name         string
		legacy, hack annot.Category
	}{
		{`HH\varray`, annot.VArray, annot.Vec},
		{`HH\darray`, annot.DArray, annot.Dict},
		{`HH\varray_or_darray`, annot.VArrOrDArr, annot.VecOrDict},
	}
	legacy := annot.NewTable(config.Options{HackArrDVArrs: false}, strpool.New())
	hack := annot.NewTable(config.Options{HackArrDVArrs: true}, strpool.New())
	assert.False(t, legacy.HackArrDVArrs())
	assert.True(t, hack.HackArrDVArrs())

	for _, c := range cases {
		got, ok := legacy.ResolveText(c.name)
		require.True(t, ok)
		assert.Equal(t, c.legacy, got, c.name)

		got, ok = hack.ResolveText(c.name)
		require.True(t, ok)
		assert.Equal(t, c.hack, got, c.name)
	}
}

func TestResolveTextNeverYieldsObject(t *testing.T) {
	for _, mode := range []bool{false, true} {
		table := annot.NewTable(config.Options{HackArrDVArrs: mode}, strpool.New())
		for _, e := range table.Entries() {
			c, _ := table.ResolveText(e.Name)
			assert.NotEqual(t, annot.Object, c, e.Name)
		}
	}
}

func TestObjectOnTextPathIsFatal(t *testing.T) {
	pool := strpool.New()
	broken := annot.BuildTable([]annot.Entry{{Name: "object", Category: annot.Object}}, pool)

	assert.Panics(t, func() { broken.ResolveText("object") })

	// the handle path has no such restriction
	c, ok := broken.ResolveHandle(pool.Intern("object"))
	assert.True(t, ok)
	assert.Equal(t, annot.Object, c)
}

func TestResolveHandleNilIsFatal(t *testing.T) {
	table := annot.NewTable(config.Options{}, strpool.New())
	assert.Panics(t, func() { table.ResolveHandle(nil) })
}

func TestHandlesFromAnotherPoolDoNotResolve(t *testing.T) {
	table := annot.NewTable(config.Options{}, strpool.New())
	_, ok := table.ResolveHandle(strpool.New().Intern(`HH\int`))
	assert.False(t, ok)
}

func TestEntriesSorted(t *testing.T) {
	table := annot.NewTable(config.Options{}, strpool.New())
	es := table.Entries()
	assert.Len(t, es, 26)
	assert.True(t, slices.IsSortedFunc(es, func(a, b annot.Entry) int {
		return strings.Compare(a.Name, b.Name)
	}))
}

func TestProcessTableIsBuiltOnce(t *testing.T) {
	const callers = 64
	results := make([]annot.Category, callers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			if i%2 == 0 {
				results[i], _ = annot.ResolveText(`HH\vec`)
			} else {
				results[i], _ = annot.ResolveHandle(strpool.Static(`HH\vec`))
			}
		}(i)
	}
	close(start)
	wg.Wait()

	for _, c := range results {
		assert.Equal(t, annot.Vec, c)
	}
	assert.Equal(t, int32(1), annot.ProcessTableBuilds())
	assert.Same(t, annot.ProcessTable(), annot.ProcessTable())
	assert.Same(t, strpool.Global(), annot.ProcessTable().Pool())
}

func TestLazyTableFirstBuildReadsOptionsOnce(t *testing.T) {
	prev := config.Current()
	t.Cleanup(func() { config.Set(prev) })
	config.Set(config.Options{HackArrDVArrs: true})

	pool := strpool.New()
	load, builds := annot.NewLazyTable(config.Current, pool)
	require.Equal(t, int32(0), builds())

	const callers = 64
	tables := make([]*annot.Table, callers)
	results := make([]annot.Category, callers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			tables[i] = load()
			results[i], _ = tables[i].ResolveText(`HH\varray`)
		}(i)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), builds())
	for i := range tables {
		assert.Same(t, tables[0], tables[i])
		assert.Equal(t, annot.Vec, results[i])
	}
	assert.True(t, tables[0].HackArrDVArrs())
	assert.Same(t, pool, tables[0].Pool())

	config.Set(config.Options{HackArrDVArrs: false})
	c, ok := load().ResolveText(`HH\varray`)
	require.True(t, ok)
	assert.Equal(t, annot.Vec, c)
	assert.True(t, load().HackArrDVArrs())
	assert.Equal(t, int32(1), builds())
}

func TestProcessTableIgnoresLaterOptionChanges(t *testing.T) {
	prev := config.Current()
	t.Cleanup(func() { config.Set(prev) })

	before, ok := annot.ResolveText(`HH\varray`)
	require.True(t, ok)
	observed := annot.ProcessTable().HackArrDVArrs()
	if observed {
		assert.Equal(t, annot.Vec, before)
	} else {
		assert.Equal(t, annot.VArray, before)
	}

	config.Set(config.Options{HackArrDVArrs: !observed})
	after, ok := annot.ResolveText(`HH\varray`)
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, observed, annot.ProcessTable().HackArrDVArrs())
	assert.Equal(t, int32(1), annot.ProcessTableBuilds())
}

func TestMaybeDataType(t *testing.T) {
	dt, ok := annot.MaybeDataTypeByText(`HH\int`)
	assert.True(t, ok)
	assert.Equal(t, value.Int64, dt)

	dt, ok = annot.MaybeDataTypeByHandle(strpool.Static(`HH\keyset`))
	assert.True(t, ok)
	assert.Equal(t, value.PersistentKeyset, dt)

	dt, ok = annot.MaybeDataTypeByText(`HH\mixed`)
	assert.True(t, ok)
	assert.Equal(t, value.Uninit, dt)

	_, ok = annot.MaybeDataTypeByText("MyClass")
	assert.False(t, ok)
	_, ok = annot.MaybeDataTypeByHandle(strpool.Static("MyClass"))
	assert.False(t, ok)
}

func TestProcessEntries(t *testing.T) {
	es := annot.Entries()
	assert.Len(t, es, 26)
	for _, e := range es {
		c, ok := annot.ResolveText(e.Name)
		assert.True(t, ok)
		assert.Equal(t, e.Category, c)
	}
}
