package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var counter = NewKind("test_counter", func(a, b int) int { return a + b })

func TestSingletonGet(t *testing.T) {
	bag := Singleton(counter, 3)

	v, ok := Get(bag, counter)
	require.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = Get(Empty(), counter)
	assert.False(t, ok)
}

func TestSetReplacesPriorValue(t *testing.T) {
	bag := Singleton(counter, 1)
	bag = Set(bag, counter, 9)

	v, ok := Get(bag, counter)
	require.True(t, ok)
	assert.Equal(t, 9, v)
	assert.Equal(t, 1, bag.Len())
}

func TestSetDoesNotMutateOriginal(t *testing.T) {
	original := Singleton(counter, 1)
	_ = Set(original, counter, 9)

	v, _ := Get(original, counter)
	assert.Equal(t, 1, v)
}

func TestModifyRemovesOnAbsentResult(t *testing.T) {
	bag := Singleton(counter, 5)
	bag = Modify(bag, counter, func(v int, present bool) (int, bool) {
		return 0, false
	})

	_, ok := Get(bag, counter)
	assert.False(t, ok)
	assert.Equal(t, 0, bag.Len())
}

func TestModifyUpdatesInPlace(t *testing.T) {
	bag := Singleton(counter, 5)
	bag = Modify(bag, counter, func(v int, present bool) (int, bool) {
		require.True(t, present)
		return v + 1, true
	})

	v, _ := Get(bag, counter)
	assert.Equal(t, 6, v)
}

func TestModifyInsertsWhenAbsent(t *testing.T) {
	bag := Modify(Empty(), counter, func(v int, present bool) (int, bool) {
		assert.False(t, present)
		return 42, true
	})

	v, ok := Get(bag, counter)
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestSetDefault(t *testing.T) {
	calls := 0
	makeDefault := func() int {
		calls++
		return 7
	}

	bag := SetDefault(Empty(), counter, makeDefault)
	v, _ := Get(bag, counter)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)

	// No-op when already present: producer must not run again.
	bag = SetDefault(bag, counter, makeDefault)
	v, _ = Get(bag, counter)
	assert.Equal(t, 7, v)
	assert.Equal(t, 1, calls)
}

func TestCombineIdentity(t *testing.T) {
	empty, err := Combine()
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())

	single := Singleton(counter, 4)
	result, err := Combine(single)
	require.NoError(t, err)
	assert.Equal(t, single, result)
}

func TestCombineAppliesKindCombine(t *testing.T) {
	a := Singleton(counter, 1)
	b := Singleton(counter, 2)
	c := Singleton(counter, 3)

	result, err := Combine(a, b, c)
	require.NoError(t, err)

	v, _ := Get(result, counter)
	assert.Equal(t, 6, v)
}

func TestCombinePassesThroughSingleOccurrence(t *testing.T) {
	other := NewKind("test_other", func(a, b string) string { return a + b })

	result, err := Combine(Singleton(counter, 1), Singleton(other, "x"))
	require.NoError(t, err)

	v, ok := Get(result, counter)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	s, ok := Get(result, other)
	require.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestCombineUncombinableKindFails(t *testing.T) {
	opaque := NewUncombinableKind[string]("test_opaque")

	_, err := Combine(Singleton(opaque, "a"), Singleton(opaque, "b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATR200")

	// A single occurrence of an uncombinable kind is fine.
	result, err := Combine(Singleton(opaque, "a"), Empty())
	require.NoError(t, err)
	v, ok := Get(result, opaque)
	require.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestCombineCommutativeKindsOrderIndependent(t *testing.T) {
	a := Singleton(Descriptions, NewStringSet("alpha"))
	b := Singleton(Descriptions, NewStringSet("beta"))
	c := Singleton(Descriptions, NewStringSet("gamma"))

	orders := [][]Bag{
		{a, b, c},
		{c, b, a},
		{b, a, c},
	}

	want := []string{"alpha", "beta", "gamma"}
	for _, bags := range orders {
		result, err := Combine(bags...)
		require.NoError(t, err)
		set, ok := Get(result, Descriptions)
		require.True(t, ok)
		assert.Equal(t, want, set.Sorted())
	}
}

func TestCombineAssociative(t *testing.T) {
	a := Singleton(Descriptions, NewStringSet("one"))
	b := Singleton(Descriptions, NewStringSet("two"))
	c := Singleton(Descriptions, NewStringSet("three"))

	ab, err := Combine(a, b)
	require.NoError(t, err)
	left, err := Combine(ab, c)
	require.NoError(t, err)

	bc, err := Combine(b, c)
	require.NoError(t, err)
	right, err := Combine(a, bc)
	require.NoError(t, err)

	ls, _ := Get(left, Descriptions)
	rs, _ := Get(right, Descriptions)
	assert.Equal(t, ls.Sorted(), rs.Sorted())
}

func TestPropertyDescriptionsMergePerKey(t *testing.T) {
	a := Singleton(PropertyDescriptions, map[string]StringSet{
		"name": NewStringSet("the name"),
		"age":  NewStringSet("age in years"),
	})
	b := Singleton(PropertyDescriptions, map[string]StringSet{
		"name": NewStringSet("full legal name"),
	})

	result, err := Combine(a, b)
	require.NoError(t, err)

	m, ok := Get(result, PropertyDescriptions)
	require.True(t, ok)
	assert.Equal(t, []string{"full legal name", "the name"}, m["name"].Sorted())
	assert.Equal(t, []string{"age in years"}, m["age"].Sorted())
}

func TestKindIdentityByName(t *testing.T) {
	first := NewKind("test_shared", func(a, b int) int { return a + b })
	second := NewKind("test_shared", func(a, b int) int { return a + b })

	bag := Singleton(first, 10)
	v, ok := Get(bag, second)
	require.True(t, ok)
	assert.Equal(t, 10, v)
}
