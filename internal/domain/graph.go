package domain

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Node is a located vertex of the campus graph: a building or a path
// intersection.
type Node struct {
	ID       string
	Location Point
	Name     string
}

// Edge is a directed, weighted traversal between two nodes.
type Edge struct {
	From string
	To   string
	Cost float64
}

// Graph is a read-only weighted directed graph. Outgoing edges keep the order
// in which they were added, which makes every search over it reproducible.
// A Graph is safe for concurrent readers.
type Graph struct {
	nodes []Node
	index map[string]int
	adj   [][]Edge
	at    map[Point]int
	edges int
}

// GraphBuilder accumulates nodes and edges; Build seals the result.
// Reverse edges are never added implicitly.
type GraphBuilder struct {
	g      *Graph
	sealed bool
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		g: &Graph{
			index: make(map[string]int),
			at:    make(map[Point]int),
		},
	}
}

// Add a node with a unique, non-empty id.
func (b *GraphBuilder) AddNode(id string, loc Point, name string) error {
	if b.sealed {
		return fmt.Errorf("add node %q: %w", id, ErrGraphSealed)
	}
	if id == "" {
		return errors.New("add node: id must be non-empty")
	}
	if !finite(loc.X) || !finite(loc.Y) {
		return fmt.Errorf("add node %q: location (%v, %v) must be finite", id, loc.X, loc.Y)
	}
	if _, ok := b.g.index[id]; ok {
		return fmt.Errorf("add node %q: %w", id, ErrDuplicateNode)
	}

	i := len(b.g.nodes)
	b.g.nodes = append(b.g.nodes, Node{ID: id, Location: loc, Name: name})
	b.g.adj = append(b.g.adj, nil)
	b.g.index[id] = i
	if _, ok := b.g.at[loc]; !ok {
		b.g.at[loc] = i
	}

	return nil
}

// Add a directed edge from -> to. Cost must be finite and non-negative.
func (b *GraphBuilder) AddEdge(from, to string, cost float64) error {
	if b.sealed {
		return fmt.Errorf("add edge %q -> %q: %w", from, to, ErrGraphSealed)
	}

	fi, ok := b.g.index[from]
	if !ok {
		return fmt.Errorf("add edge %q -> %q: %w: %q", from, to, ErrUnknownNode, from)
	}
	if _, ok := b.g.index[to]; !ok {
		return fmt.Errorf("add edge %q -> %q: %w: %q", from, to, ErrUnknownNode, to)
	}
	if !finite(cost) || cost < 0 {
		return fmt.Errorf("add edge %q -> %q: %w: %v", from, to, ErrInvalidCost, cost)
	}

	b.g.adj[fi] = append(b.g.adj[fi], Edge{From: from, To: to, Cost: cost})
	b.g.edges++

	return nil
}

func (b *GraphBuilder) HasNode(id string) bool {
	_, ok := b.g.index[id]
	return ok
}

// NodeAt returns the first node added at loc.
func (b *GraphBuilder) NodeAt(loc Point) (Node, bool) {
	return b.g.NodeAt(loc)
}

// Build seals the builder and returns the finished graph.
func (b *GraphBuilder) Build() *Graph {
	b.sealed = true
	return b.g
}

func (g *Graph) Lookup(id string) (Node, error) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, fmt.Errorf("lookup: %w: %q", ErrUnknownNode, id)
	}
	return g.nodes[i], nil
}

func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Neighbors returns the outgoing edges of id in insertion order.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("neighbors: %w: %q", ErrUnknownNode, id)
	}
	return slices.Clone(g.adj[i]), nil
}

func (g *Graph) NodeAt(loc Point) (Node, bool) {
	i, ok := g.at[loc]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return g.edges }

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
