package ast

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasmine-lang/jasmine/core/diag"
	"github.com/jasmine-lang/jasmine/core/j"
)

func sampleSql() *Sql {
	return &Sql{
		Op:      "select",
		From:    &Id{Name: "t", Start: 5},
		Filters: []Node{&BinOp{Op: &Op{Name: "=="}, Lhs: &Id{Name: "sym"}, Rhs: &J{Value: j.Symbol("a")}}},
		Groups:  []Node{&Id{Name: "sym"}},
		Ops: []Node{
			&UnaryOp{Op: &Id{Name: "sum"}, Exp: &Id{Name: "col1"}},
			&SeriesExp{Name: "newCol", Exp: &Id{Name: "col2"}},
		},
		Sorts: []Node{&Id{Name: "-col1"}},
	}
}

// TestKind verifies host type codes stay stable
func TestKind(t *testing.T) {
	tests := []struct {
		node Node
		want Type
		code uint8
	}{
		{&J{Value: j.I64(1)}, TypeJ, 0},
		{&Fn{}, TypeFn, 1},
		{&Id{}, TypeId, 7},
		{&Call{}, TypeCall, 8},
		{&SeriesExp{}, TypeSeries, 18},
		{&Sql{}, TypeSql, 19},
		{&Skip{}, TypeSkip, 21},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Kind(tt.node))
		assert.Equal(t, tt.code, uint8(Kind(tt.node)))
	}
	assert.Equal(t, "SeriesExp", TypeSeries.String())
}

// TestNarrowing verifies narrowing helpers and their error text
func TestNarrowing(t *testing.T) {
	id, err := AsId(&Id{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", id.Name)

	_, err = AsSql(&Id{Name: "x"})
	require.Error(t, err)
	assert.Equal(t, "failed to refer ast sql from Id", err.Error())
	assert.Equal(t, diag.KindNarrow, diag.KindOf(err))

	_, err = AsJ(&Skip{})
	assert.EqualError(t, err, "failed to refer ast j from Skip")

	v, ok := Value(&J{Value: j.F64(1.5)})
	require.True(t, ok)
	assert.Equal(t, j.F64(1.5), v)
	_, ok = Value(&Id{})
	assert.False(t, ok)
}

// TestEqual verifies structural comparison
func TestEqual(t *testing.T) {
	assert.True(t, Equal(sampleSql(), sampleSql()))

	other := sampleSql()
	other.Take = &J{Value: j.I64(10)}
	assert.False(t, Equal(sampleSql(), other))

	series := func() Node {
		return &J{Value: j.NewSeries("", j.DTypeF64, j.F64(1), j.F64(2))}
	}
	assert.True(t, Equal(series(), series()))
	assert.False(t, Equal(series(), &J{Value: j.NewSeries("", j.DTypeI64, j.I64(1), j.I64(2))}))
	assert.False(t, Equal(&Id{Name: "a"}, &Op{Name: "a"}))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(&Skip{}, nil))

	// go-cmp picks up (*J).Equal for series payloads
	if diff := cmp.Diff(series(), series()); diff != "" {
		t.Errorf("unexpected diff:\n%s", diff)
	}
}

// TestChildrenAndInspect verifies traversal order
func TestChildrenAndInspect(t *testing.T) {
	var names []string
	Inspect(sampleSql(), func(n Node) bool {
		if id, ok := n.(*Id); ok {
			names = append(names, id.Name)
		}
		return true
	})
	assert.Equal(t, []string{"t", "sym", "sym", "sum", "col1", "col2", "-col1"}, names)

	count := 0
	Inspect(sampleSql(), func(n Node) bool {
		count++
		_, isSql := n.(*Sql)
		return isSql
	})
	assert.Equal(t, 7, count, "root plus its direct children only")
}

// TestTree verifies the rendered tree contains clause branches
func TestTree(t *testing.T) {
	out := Tree([]Node{
		&Assign{Name: "total", Exp: &UnaryOp{Op: &Id{Name: "sum"}, Exp: &J{Value: j.I64(3)}}},
		sampleSql(),
	})

	for _, want := range []string{"Assign total", "Id sum", "J i64 3", "Sql select", "from: Id t", "filter", "group", "ops", "sort", "Id -col1", "SeriesExp newCol"} {
		assert.True(t, strings.Contains(out, want), "missing %q in\n%s", want, out)
	}
}

// TestToMap verifies the map encoding of a query
func TestToMap(t *testing.T) {
	m := ToMap(sampleSql())
	assert.Equal(t, "Sql", m["type"])
	assert.Equal(t, "select", m["op"])
	assert.Equal(t, map[string]any{"type": "Id", "name": "t", "start": 5, "source_id": 0}, m["from"])
	assert.Len(t, m["ops"], 2)
	_, hasTake := m["take"]
	assert.False(t, hasTake)

	lit := ToMap(&J{Value: j.NewSeries("", j.DTypeI64, j.I64(1), j.I64(2))})
	assert.Equal(t, map[string]any{"type": "J", "jtype": "series", "value": "[1, 2]"}, lit)
}
