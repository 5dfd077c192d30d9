package value

import (
	"github.com/cottand/annot/internal/config"
	"github.com/cottand/annot/strpool"
	"github.com/stretchr/testify/assert"
	"testing"
)

func withHackArrDVArrs(t *testing.T, on bool) {
	prev := config.Current()
	t.Cleanup(func() { config.Set(prev) })
	next := prev
	next.HackArrDVArrs = on
	config.Set(next)
}

func TestStaticEmptyArrays(t *testing.T) {
	cases := []struct {
		arr   *ArrayData
		dt    DataType
		shape string
	}{
		{StaticEmptyArray(), PersistentArray, "array"},
		{StaticEmptyVArray(), PersistentVArray, "varray"},
		{StaticEmptyDArray(), PersistentDArray, "darray"},
		{StaticEmptyVec(), PersistentVec, "vec"},
		{StaticEmptyDict(), PersistentDict, "dict"},
		{StaticEmptyKeyset(), PersistentKeyset, "keyset"},
	}
	for _, c := range cases {
		t.Run(c.shape, func(t *testing.T) {
			assert.True(t, c.arr.IsStatic())
			assert.True(t, c.arr.Empty())
			assert.Equal(t, c.shape, c.arr.ShapeName())

			tv := MakePersistentArrayLike(c.arr)
			assert.Equal(t, c.dt, tv.Type)
			assert.Same(t, c.arr, tv.Arr)
			assert.True(t, IsArrayLike(tv))
			assert.Equal(t, c.shape+"[0]", tv.Format())
		})
	}
}

func TestMakePersistentArrayLikeRejectsNonStatic(t *testing.T) {
	assert.Panics(t, func() { MakePersistentArrayLike(&ArrayData{kind: VecKind}) })
	assert.Panics(t, func() { MakePersistentArrayLike(nil) })
}

func TestScalars(t *testing.T) {
	assert.True(t, IsNull(MakeNull()))
	assert.True(t, IsNull(MakeUninit()))
	assert.Equal(t, "null", MakeNull().Format())

	assert.False(t, MakeBool(false).Bool())
	assert.True(t, MakeBool(true).Bool())
	assert.Equal(t, "bool(false)", MakeBool(false).Format())

	assert.Equal(t, int64(7), AssertInt(MakeInt(7)))
	assert.Equal(t, "int(0)", MakeInt(0).Format())

	assert.Equal(t, 1.5, AssertDouble(MakeDouble(1.5)))
	assert.Equal(t, "float(0)", MakeDouble(0).Format())

	assert.Panics(t, func() { AssertInt(MakeDouble(1)) })
	assert.Panics(t, func() { AssertDouble(MakeInt(1)) })
}

func TestPersistentString(t *testing.T) {
	tv := MakePersistentString(strpool.Empty())
	assert.True(t, IsString(tv))
	assert.Same(t, strpool.Empty(), tv.Str)
	assert.Equal(t, `string("")`, tv.Format())
	assert.Panics(t, func() { MakePersistentString(nil) })
}

func TestArrayPredicates(t *testing.T) {
	varr := MakePersistentArrayLike(StaticEmptyVArray())
	darr := MakePersistentArrayLike(StaticEmptyDArray())
	vec := MakePersistentArrayLike(StaticEmptyVec())
	dict := MakePersistentArrayLike(StaticEmptyDict())
	keyset := MakePersistentArrayLike(StaticEmptyKeyset())

	assert.True(t, IsArray(varr))
	assert.True(t, IsVArray(varr))
	assert.False(t, IsHackArray(varr))
	assert.True(t, IsArray(darr))
	assert.True(t, IsDArray(darr))

	for _, tv := range []TypedValue{vec, dict, keyset} {
		assert.True(t, IsHackArray(tv))
		assert.False(t, IsArray(tv))
	}
	assert.True(t, IsVec(vec))
	assert.True(t, IsDict(dict))
	assert.True(t, IsKeyset(keyset))
}

func TestVecOrVArrayFollowsMode(t *testing.T) {
	varr := MakePersistentArrayLike(StaticEmptyVArray())
	darr := MakePersistentArrayLike(StaticEmptyDArray())
	vec := MakePersistentArrayLike(StaticEmptyVec())
	dict := MakePersistentArrayLike(StaticEmptyDict())

	t.Run("legacy", func(t *testing.T) {
		withHackArrDVArrs(t, false)
		assert.True(t, IsVecOrVArray(varr))
		assert.False(t, IsVecOrVArray(vec))
		assert.True(t, IsDictOrDArray(darr))
		assert.False(t, IsDictOrDArray(dict))
		assert.False(t, IsVecOrVArray(darr))
	})
	t.Run("hack arrays", func(t *testing.T) {
		withHackArrDVArrs(t, true)
		assert.False(t, IsVecOrVArray(varr))
		assert.True(t, IsVecOrVArray(vec))
		assert.False(t, IsDictOrDArray(darr))
		assert.True(t, IsDictOrDArray(dict))
	})
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "PersistentVec", PersistentVec.String())
	assert.Equal(t, "Record", Record.String())
	assert.Equal(t, "DataType(99)", DataType(99).String())
}
