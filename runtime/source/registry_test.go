package source

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasmine-lang/jasmine/core/diag"
)

func TestAddDeduplicatesUnchangedText(t *testing.T) {
	r := NewRegistry()

	a := r.Add("a.jm", "x = 1")
	assert.Equal(t, 1, a)
	assert.Equal(t, a, r.Add("a.jm", "x = 1"), "unchanged text keeps its id")

	b := r.Add("a.jm", "x = 2")
	assert.Equal(t, 2, b)
	assert.Equal(t, 3, r.Add("b.jm", "x = 2"), "same text under another path is a new unit")
	assert.Equal(t, 3, r.Len())

	// the older version stays reachable for errors raised against it
	u, ok := r.Get(a)
	require.True(t, ok)
	assert.Equal(t, "x = 1", u.Text)
	assert.NotEqual(t, u.Digest, mustGet(t, r, b).Digest)

	_, ok = r.Get(0)
	assert.False(t, ok)
}

func TestTrace(t *testing.T) {
	r := NewRegistry()
	id := r.Add("main.jm", "a = 1;\nb = c + 1")

	got, err := r.Trace(id, 11, "'c' is not defined")
	require.NoError(t, err)
	assert.Equal(t, "--> main.jm:2:5\n\nb = c + 1\n    ^\n\n= 'c' is not defined", got)

	anon := r.Add("", "1 +")
	got, err = r.Trace(anon, 3, "eof")
	require.NoError(t, err)
	assert.Equal(t, "--> 1:4\n\n1 +\n   ^\n\n= eof", got)

	_, err = r.Trace(99, 0, "x")
	assert.EqualError(t, err, "unknown source id 99")

	_, err = r.Trace(id, 100, "x")
	assert.EqualError(t, err, "offset 100 out of range for main.jm (16 bytes)")
}

func TestParseRendersAgainstItsUnit(t *testing.T) {
	r := NewRegistry()

	id, nodes, err := r.Parse("ok.jm", "x = 1; y = 2")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Len(t, nodes, 2)

	id, _, err = r.Parse("bad.jm", "x = 1;\n[1, 2.5]")
	require.Error(t, err)
	assert.Equal(t, 2, id)

	var de *diag.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, id, de.SourceID)

	want := "--> bad.jm:2:5\n\n[1, 2.5]\n    ^\n\n= Not a valid i64, 2.5"
	assert.Equal(t, want, r.Render(err))
}

func TestRenderFallsBackToMessage(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "plain", r.Render(fmt.Errorf("plain")))

	err := diag.Syntaxf(diag.Span{Start: 0, End: 1}, "lost")
	err.SourceID = 42
	assert.Equal(t, "lost", r.Render(err))
}

func TestConcurrentAdd(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	ids := make([]int, 50)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = r.Add(fmt.Sprintf("f%d.jm", i), "x")
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
	assert.Equal(t, 50, r.Len())
}

func mustGet(t *testing.T, r *Registry, id int) Unit {
	t.Helper()
	u, ok := r.Get(id)
	require.True(t, ok)
	return u
}
