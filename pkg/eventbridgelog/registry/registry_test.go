package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[string, int]()
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Keys())
}

func TestRegisterAndGet(t *testing.T) {
	r := New[string, int]()

	require.NoError(t, r.Register("one", 1))
	require.NoError(t, r.Register("two", 2))

	v, ok := r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = r.Get("three")
	assert.False(t, ok)
	assert.Equal(t, 0, v)

	assert.True(t, r.Has("two"))
	assert.False(t, r.Has("three"))
}

func TestRegisterDuplicate(t *testing.T) {
	r := New[string, string]()

	require.NoError(t, r.Register("key", "first"))
	err := r.Register("key", "second")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))

	v, _ := r.Get("key")
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, r.Len())
}

func TestReplaceKeepsPosition(t *testing.T) {
	r := New[string, int]()
	require.NoError(t, r.Register("a", 1))
	require.NoError(t, r.Register("b", 2))

	r.Replace("a", 10)
	r.Replace("c", 3)

	assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
	assert.Equal(t, []int{10, 2, 3}, r.Values())
}

func TestKeysRegistrationOrder(t *testing.T) {
	r := New[string, int]()
	names := []string{"zeta", "alpha", "mid", "beta"}
	for i, n := range names {
		require.NoError(t, r.Register(n, i))
	}

	assert.Equal(t, names, r.Keys())

	keys := r.Keys()
	keys[0] = "mutated"
	assert.Equal(t, "zeta", r.Keys()[0], "Keys must return a copy")
}

func TestRange(t *testing.T) {
	r := New[int, string]()
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Register(i, fmt.Sprint(i)))
	}

	var seen []int
	r.Range(func(k int, v string) bool {
		seen = append(seen, k)
		return k < 2
	})
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestRangeAllowsMutation(t *testing.T) {
	r := New[string, int]()
	require.NoError(t, r.Register("a", 1))

	count := 0
	r.Range(func(k string, v int) bool {
		count++
		r.Replace("b", 2)
		return true
	})

	assert.Equal(t, 1, count)
	assert.Equal(t, 2, r.Len())
}

func TestConcurrentAccess(t *testing.T) {
	r := New[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(i, i*i)
		}(i)
		go func(i int) {
			defer wg.Done()
			r.Get(i)
			r.Keys()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
	for i := 0; i < 50; i++ {
		v, ok := r.Get(i)
		assert.True(t, ok)
		assert.Equal(t, i*i, v)
	}
}
