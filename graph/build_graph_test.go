package graph

import (
	"errors"
	"testing"

	"ecoroute/geo"
)

// coordinates are [lon, lat]
func unitSquare() []Location {
	return []Location{
		{ID: 0, Name: "a", Loc: geo.Coord{0, 0}},
		{ID: 1, Name: "b", Loc: geo.Coord{1, 0}},
		{ID: 2, Name: "c", Loc: geo.Coord{1, 1}},
		{ID: 3, Name: "d", Loc: geo.Coord{0, 1}},
	}
}

func TestBuildKNNGraph(t *testing.T) {
	g, err := BuildKNNGraph(unitSquare(), 2, 0)
	if err != nil {
		t.Fatalf("BuildKNNGraph failed: %v", err)
	}
	// every corner connects to its two sides, never the diagonal
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount = %v; want 4", g.EdgeCount())
	}
	if _, ok := g.GetEdgeBetween(0, 2); ok {
		t.Errorf("diagonal edge 0-2 should not exist")
	}
	if _, ok := g.GetEdgeBetween(1, 3); ok {
		t.Errorf("diagonal edge 1-3 should not exist")
	}
	for _, pair := range [][2]int32{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if _, ok := g.GetEdgeBetween(pair[0], pair[1]); !ok {
			t.Errorf("side edge %v-%v missing", pair[0], pair[1])
		}
	}
}

func TestBuildKNNGraphClampsK(t *testing.T) {
	// k beyond V-1 degrades to a complete graph
	g, err := BuildKNNGraph(unitSquare(), 100, 0)
	if err != nil {
		t.Fatalf("BuildKNNGraph failed: %v", err)
	}
	if g.EdgeCount() != 6 {
		t.Errorf("EdgeCount = %v; want 6", g.EdgeCount())
	}
	g, err = BuildKNNGraph(unitSquare(), -1, 0)
	if err != nil {
		t.Fatalf("BuildKNNGraph failed: %v", err)
	}
	for i := int32(0); i < int32(g.NodeCount()); i++ {
		degree := 0
		g.ForAdjacentEdges(i, func(edge int32, other int32) {
			if other == i {
				t.Errorf("self edge at node %v", i)
			}
			degree++
		})
		if degree < 1 {
			t.Errorf("node %v has no edges with k=1", i)
		}
	}
}

func TestBuildCompleteGraph(t *testing.T) {
	g, err := BuildCompleteGraph(unitSquare(), 0)
	if err != nil {
		t.Fatalf("BuildCompleteGraph failed: %v", err)
	}
	if g.EdgeCount() != 6 {
		t.Errorf("EdgeCount = %v; want 6", g.EdgeCount())
	}
	for i := int32(0); i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			edge, ok := g.GetEdgeBetween(i, j)
			if !ok {
				t.Fatalf("edge %v-%v missing", i, j)
			}
			e := g.GetEdge(edge)
			if e.Factor != MIN_TRAFFIC_FACTOR {
				t.Errorf("default factor = %v; want %v", e.Factor, MIN_TRAFFIC_FACTOR)
			}
			want := geo.HaversineDistance(g.GetNode(i).Loc, g.GetNode(j).Loc)
			if e.Distance != want {
				t.Errorf("edge %v-%v distance = %v; want %v", i, j, e.Distance, want)
			}
		}
	}
}

func TestBuildGraphCapacity(t *testing.T) {
	if _, err := BuildCompleteGraph(unitSquare(), 3); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("err = %v; want ErrCapacityExceeded", err)
	}
	if _, err := BuildKNNGraph(unitSquare(), 2, 3); !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("err = %v; want ErrCapacityExceeded", err)
	}
}

func TestSetFactorClamps(t *testing.T) {
	g, _ := BuildCompleteGraph(unitSquare(), 0)
	edge, _ := g.GetEdgeBetween(0, 1)
	g.SetFactor(edge, 10)
	if got := g.GetEdge(edge).Factor; got != MAX_TRAFFIC_FACTOR {
		t.Errorf("factor = %v; want %v", got, MAX_TRAFFIC_FACTOR)
	}
	g.SetFactor(edge, 0.5)
	if got := g.GetEdge(edge).Factor; got != MIN_TRAFFIC_FACTOR {
		t.Errorf("factor = %v; want %v", got, MIN_TRAFFIC_FACTOR)
	}
}
