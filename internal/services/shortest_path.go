package services

import (
	"campus-paths-service/internal/domain"
	"container/heap"
	"errors"
	"fmt"
)

// FindPath returns the minimum-cost path from src to dest using Dijkstra's
// algorithm over non-negative edge costs.
//
// Equal-cost candidates are expanded in discovery order: a node reached first
// through adjacency iteration keeps its predecessor unless a strictly cheaper
// route appears. Repeated calls on the same graph return identical paths.
// Costs are summed in float64 and never rounded here.
func FindPath(g *domain.Graph, src, dest string) (domain.Path, error) {
	if g == nil {
		return domain.Path{}, errors.New("find path: graph is nil")
	}

	start, err := g.Lookup(src)
	if err != nil {
		return domain.Path{}, fmt.Errorf("find path: source: %w", err)
	}
	end, err := g.Lookup(dest)
	if err != nil {
		return domain.Path{}, fmt.Errorf("find path: destination: %w", err)
	}

	if src == dest {
		return domain.Path{Start: start.Location, Segments: []domain.Segment{}, TotalCost: 0}, nil
	}

	s := &search{
		g:        g,
		dist:     map[string]float64{src: 0},
		prev:     make(map[string]domain.Edge),
		finished: make(map[string]struct{}),
	}
	s.push(src, 0)

	for s.pq.Len() > 0 {
		item := heap.Pop(&s.pq).(*pqItem)
		cur := item.node

		if _, done := s.finished[cur]; done {
			continue
		}
		s.finished[cur] = struct{}{}

		if cur == dest {
			return s.reconstruct(start, end)
		}

		edges, err := g.Neighbors(cur)
		if err != nil {
			return domain.Path{}, fmt.Errorf("find path: %w", err)
		}

		for _, e := range edges {
			if _, done := s.finished[e.To]; done {
				continue
			}

			tentative := item.cost + e.Cost
			if old, seen := s.dist[e.To]; seen && tentative >= old {
				continue
			}

			s.dist[e.To] = tentative
			s.prev[e.To] = e
			s.push(e.To, tentative)
		}
	}

	return domain.Path{}, fmt.Errorf("find path %q -> %q: %w", src, dest, domain.ErrNotFound)
}

// search holds the query-local state of one FindPath call.
type search struct {
	g        *domain.Graph
	dist     map[string]float64
	prev     map[string]domain.Edge
	finished map[string]struct{}
	pq       priorityQueue
	seq      uint64
}

func (s *search) push(node string, cost float64) {
	heap.Push(&s.pq, &pqItem{node: node, cost: cost, seq: s.seq})
	s.seq++
}

// reconstruct walks predecessor edges back from end and emits segments in
// travel order.
func (s *search) reconstruct(start, end domain.Node) (domain.Path, error) {
	var edges []domain.Edge
	for cur := end.ID; cur != start.ID; {
		e, ok := s.prev[cur]
		if !ok {
			return domain.Path{}, fmt.Errorf("find path: broken predecessor chain at %q", cur)
		}
		edges = append(edges, e)
		cur = e.From
	}

	segments := make([]domain.Segment, 0, len(edges))
	total := 0.0
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		from, err := s.g.Lookup(e.From)
		if err != nil {
			return domain.Path{}, fmt.Errorf("find path: %w", err)
		}
		to, err := s.g.Lookup(e.To)
		if err != nil {
			return domain.Path{}, fmt.Errorf("find path: %w", err)
		}

		segments = append(segments, domain.Segment{Start: from.Location, End: to.Location, Cost: e.Cost})
		total += e.Cost
	}

	return domain.Path{Start: start.Location, Segments: segments, TotalCost: total}, nil
}

type pqItem struct {
	node string
	cost float64
	seq  uint64
}

// priorityQueue orders by accumulated cost, then by push order.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*pqItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
