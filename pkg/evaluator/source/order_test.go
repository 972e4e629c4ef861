package source

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arthur-debert/evaluator/pkg/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSet(t *testing.T, ps ...string) *Set {
	t.Helper()
	set := NewSet(evaluator.NewTestLogger(&bytes.Buffer{}, 0))
	for _, p := range ps {
		set.Add(FromPath(nil, p))
	}
	return set
}

func indexOf(srcs []*Source, path string) int {
	for i, s := range srcs {
		if s.Path() == path {
			return i
		}
	}
	return -1
}

func TestOrder_NoDeps(t *testing.T) {
	set := newTestSet(t, "/c", "/a", "/b")

	got, err := Order(set, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"/c", "/a", "/b"}, paths(got))
}

func TestOrder_DependenciesFirst(t *testing.T) {
	set := newTestSet(t, "/main.c", "/util.c", "/lib.c", "/free.c")

	got, err := Order(set, map[string][]string{
		"/main.c": {"/util.c", "/lib.c"},
		"/util.c": {"/lib.c"},
	})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Less(t, indexOf(got, "/lib.c"), indexOf(got, "/util.c"))
	assert.Less(t, indexOf(got, "/util.c"), indexOf(got, "/main.c"))
	assert.Equal(t, "/free.c", got[3].Path())
}

func TestOrder_UnknownSource(t *testing.T) {
	set := newTestSet(t, "/a")

	_, err := Order(set, map[string][]string{"/a": {"/missing"}})

	var unknown *UnknownSourceError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "/missing", unknown.Path)
}

func TestOrder_Cycle(t *testing.T) {
	set := newTestSet(t, "/a", "/b")

	_, err := Order(set, map[string][]string{
		"/a": {"/b"},
		"/b": {"/a"},
	})

	var cycle *CycleError
	require.True(t, errors.As(err, &cycle))
	assert.Error(t, cycle.Unwrap())
}
