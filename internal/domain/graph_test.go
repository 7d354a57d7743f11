package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphBuilderAddNode(t *testing.T) {
	b := NewGraphBuilder()

	require.NoError(t, b.AddNode("CSE", Point{1, 2}, "Allen Center"))
	assert.True(t, b.HasNode("CSE"))

	err := b.AddNode("CSE", Point{3, 4}, "again")
	require.ErrorIs(t, err, ErrDuplicateNode)
	assert.Contains(t, err.Error(), `"CSE"`)

	require.Error(t, b.AddNode("", Point{}, "blank"))
	require.Error(t, b.AddNode("NAN", Point{X: math.NaN()}, ""))
	require.Error(t, b.AddNode("INF", Point{Y: math.Inf(1)}, ""))
}

func TestGraphBuilderAddEdge(t *testing.T) {
	b := NewGraphBuilder()
	require.NoError(t, b.AddNode("A", Point{0, 0}, ""))
	require.NoError(t, b.AddNode("B", Point{1, 0}, ""))

	tests := []struct {
		name     string
		from, to string
		cost     float64
		want     error
	}{
		{"unknown source", "X", "B", 1, ErrUnknownNode},
		{"unknown target", "A", "X", 1, ErrUnknownNode},
		{"negative cost", "A", "B", -0.5, ErrInvalidCost},
		{"nan cost", "A", "B", math.NaN(), ErrInvalidCost},
		{"infinite cost", "A", "B", math.Inf(1), ErrInvalidCost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, b.AddEdge(tt.from, tt.to, tt.cost), tt.want)
		})
	}

	require.NoError(t, b.AddEdge("A", "B", 0))
	require.NoError(t, b.AddEdge("A", "A", 0))

	g := b.Build()
	assert.Equal(t, 2, g.EdgeCount())
}

func TestGraphNeighborsKeepInsertionOrder(t *testing.T) {
	b := NewGraphBuilder()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, b.AddNode(id, Point{}, ""))
	}
	require.NoError(t, b.AddEdge("A", "D", 3))
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("A", "C", 2))

	g := b.Build()

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, []string{"D", "B", "C"}, []string{edges[0].To, edges[1].To, edges[2].To})

	// Edges are directed: nothing was added from B.
	edges, err = g.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, edges)

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, ErrUnknownNode)
}

func TestGraphNeighborsReturnsCopy(t *testing.T) {
	b := NewGraphBuilder()
	require.NoError(t, b.AddNode("A", Point{}, ""))
	require.NoError(t, b.AddNode("B", Point{}, ""))
	require.NoError(t, b.AddEdge("A", "B", 1))
	g := b.Build()

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	edges[0].Cost = 99

	again, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, again[0].Cost)
}

func TestGraphBuildSeals(t *testing.T) {
	b := NewGraphBuilder()
	require.NoError(t, b.AddNode("A", Point{}, ""))
	g := b.Build()

	require.ErrorIs(t, b.AddNode("B", Point{}, ""), ErrGraphSealed)
	require.ErrorIs(t, b.AddEdge("A", "A", 1), ErrGraphSealed)
	assert.Equal(t, 1, g.Len())
}

func TestGraphLookupAndNodeAt(t *testing.T) {
	b := NewGraphBuilder()
	require.NoError(t, b.AddNode("A", Point{5, 5}, "Alpha"))
	require.NoError(t, b.AddNode("B", Point{5, 5}, "Beta"))
	require.NoError(t, b.AddNode("C", Point{6, 6}, ""))
	g := b.Build()

	n, err := g.Lookup("A")
	require.NoError(t, err)
	assert.Equal(t, Node{ID: "A", Location: Point{5, 5}, Name: "Alpha"}, n)

	_, err = g.Lookup("missing")
	require.ErrorIs(t, err, ErrUnknownNode)

	// The first node added at a location wins.
	at, ok := g.NodeAt(Point{5, 5})
	require.True(t, ok)
	assert.Equal(t, "A", at.ID)

	_, ok = g.NodeAt(Point{7, 7})
	assert.False(t, ok)

	ids := make([]string, 0, g.Len())
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
}
