package services

import (
	"campus-paths-service/internal/domain"
	"campus-paths-service/internal/ports"
	"testing"

	"github.com/stretchr/testify/require"
)

// testCampusData describes a square campus with two equal-cost routes from
// ALP to GAM (via BET or via the north-west intersection) and one building
// with no paths at all.
func testCampusData() *ports.CampusData {
	alp := domain.Point{X: 0, Y: 0}
	bet := domain.Point{X: 300, Y: 0}
	gam := domain.Point{X: 300, Y: 400}
	corner := domain.Point{X: 0, Y: 400}

	twoWay := func(a, b domain.Point, d float64) []ports.PathRecord {
		return []ports.PathRecord{
			{Start: a, End: b, Distance: d},
			{Start: b, End: a, Distance: d},
		}
	}

	var paths []ports.PathRecord
	paths = append(paths, twoWay(alp, bet, 300)...)
	paths = append(paths, twoWay(bet, gam, 400)...)
	paths = append(paths, twoWay(alp, corner, 400)...)
	paths = append(paths, twoWay(corner, gam, 300)...)

	return &ports.CampusData{
		Buildings: []domain.Building{
			{ShortName: "ALP", LongName: "Alpha Hall", Location: alp},
			{ShortName: "BET", LongName: "Beta Hall", Location: bet},
			{ShortName: "GAM", LongName: "Gamma Hall", Location: gam},
			{ShortName: "ISL", LongName: "Island Observatory", Location: domain.Point{X: 1000, Y: 1000}},
		},
		Paths: paths,
	}
}

func testCampus(t *testing.T) *CampusMap {
	t.Helper()
	cm, err := BuildCampus(testCampusData())
	require.NoError(t, err)
	return cm
}

type testEdge struct {
	from, to string
	cost     float64
}

// buildGraph places node i at (i, 0) and adds edges in the given order.
func buildGraph(t *testing.T, ids []string, edges []testEdge) *domain.Graph {
	t.Helper()
	b := domain.NewGraphBuilder()
	for i, id := range ids {
		require.NoError(t, b.AddNode(id, domain.Point{X: float64(i), Y: 0}, id))
	}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e.from, e.to, e.cost))
	}
	return b.Build()
}
