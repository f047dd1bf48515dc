package routing

import (
	"math"
	"testing"

	"ecoroute/geo"
	"ecoroute/graph"
)

func unitSquareGraph(t *testing.T) *graph.Graph {
	locations := []graph.Location{
		{ID: 0, Name: "a", Loc: geo.Coord{0, 0}},
		{ID: 1, Name: "b", Loc: geo.Coord{1, 0}},
		{ID: 2, Name: "c", Loc: geo.Coord{1, 1}},
		{ID: 3, Name: "d", Loc: geo.Coord{0, 1}},
	}
	g, err := graph.BuildKNNGraph(locations, 2, 0)
	if err != nil {
		t.Fatalf("BuildKNNGraph failed: %v", err)
	}
	return g
}

func pathCost(t *testing.T, g *graph.Graph, weight graph.IWeighting, nodes []int32) float64 {
	cost := 0.0
	for i := 1; i < len(nodes); i++ {
		edge, ok := g.GetEdgeBetween(nodes[i-1], nodes[i])
		if !ok {
			t.Fatalf("path uses missing edge %v-%v", nodes[i-1], nodes[i])
		}
		cost += weight.GetEdgeWeight(edge)
	}
	return cost
}

func TestShortestPathUnitSquare(t *testing.T) {
	g := unitSquareGraph(t)
	weight := graph.NewDistanceWeighting(g)

	path, ok := ShortestPath(g, weight, 0, 2)
	if !ok {
		t.Fatalf("no path found")
	}
	// no diagonal exists, the route takes two sides
	if path.Length() != 3 {
		t.Fatalf("path length = %v; want 3", path.Length())
	}
	want := pathCost(t, g, weight, path.Nodes)
	if math.Abs(path.Cost-want) > 1e-9 {
		t.Errorf("path cost = %v; want segment sum %v", path.Cost, want)
	}
}

// brute-force check that Dijkstra finds the optimum on a small graph
func TestShortestPathOptimal(t *testing.T) {
	locations := []graph.Location{
		{ID: 0, Name: "a", Loc: geo.Coord{0, 0}},
		{ID: 1, Name: "b", Loc: geo.Coord{0.3, 0.1}},
		{ID: 2, Name: "c", Loc: geo.Coord{0.5, 0.4}},
		{ID: 3, Name: "d", Loc: geo.Coord{0.9, 0.2}},
		{ID: 4, Name: "e", Loc: geo.Coord{1.2, 0.5}},
	}
	g, err := graph.BuildKNNGraph(locations, 2, 0)
	if err != nil {
		t.Fatalf("BuildKNNGraph failed: %v", err)
	}
	weight := graph.NewDistanceWeighting(g)

	path, ok := ShortestPath(g, weight, 0, 4)
	if !ok {
		t.Fatalf("no path found")
	}
	best := enumerateBest(g, weight, 0, 4)
	if math.Abs(path.Cost-best) > 1e-9 {
		t.Errorf("path cost = %v; brute force found %v", path.Cost, best)
	}
}

// depth-first enumeration of all loopless paths
func enumerateBest(g *graph.Graph, weight graph.IWeighting, from, to int32) float64 {
	best := math.Inf(1)
	visited := make([]bool, g.NodeCount())
	var walk func(node int32, cost float64)
	walk = func(node int32, cost float64) {
		if node == to {
			if cost < best {
				best = cost
			}
			return
		}
		visited[node] = true
		g.ForAdjacentEdges(node, func(edge int32, other int32) {
			if !visited[other] {
				walk(other, cost+weight.GetEdgeWeight(edge))
			}
		})
		visited[node] = false
	}
	walk(from, 0)
	return best
}

func TestShortestPathUnreachable(t *testing.T) {
	locations := []graph.Location{
		{ID: 0, Name: "a", Loc: geo.Coord{0, 0}},
		{ID: 1, Name: "b", Loc: geo.Coord{0, 1}},
		{ID: 2, Name: "c", Loc: geo.Coord{0, 2}},
	}
	g := graph.NewGraph(locations)
	g.AddEdge(0, 1, 1.0)
	// node 2 is isolated

	if _, ok := ShortestPath(g, graph.NewDistanceWeighting(g), 0, 2); ok {
		t.Errorf("found a path to an isolated node")
	}
	if paths := BestPaths(g, graph.NewDistanceWeighting(g), 0, 2); paths != nil {
		t.Errorf("BestPaths = %v; want nil", paths)
	}
}

func TestShortestPathExcluding(t *testing.T) {
	g := unitSquareGraph(t)
	weight := graph.NewDistanceWeighting(g)

	path, ok := ShortestPath(g, weight, 0, 1)
	if !ok || path.Length() != 2 {
		t.Fatalf("direct path missing")
	}
	// with the direct edge excluded the route goes the long way round
	detour, ok := ShortestPathExcluding(g, weight, 0, 1, 0, 1)
	if !ok {
		t.Fatalf("no detour found")
	}
	if detour.Length() != 4 {
		t.Errorf("detour length = %v; want 4", detour.Length())
	}
	for i := 1; i < len(detour.Nodes); i++ {
		u, v := detour.Nodes[i-1], detour.Nodes[i]
		if (u == 0 && v == 1) || (u == 1 && v == 0) {
			t.Errorf("detour reuses the excluded edge")
		}
	}
}

func TestBestPaths(t *testing.T) {
	g := unitSquareGraph(t)
	weight := graph.NewDistanceWeighting(g)

	paths := BestPaths(g, weight, 0, 2)
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %v; want 2", len(paths))
	}
	if paths[0].Cost > paths[1].Cost {
		t.Errorf("primary cost %v exceeds alternate cost %v", paths[0].Cost, paths[1].Cost)
	}
	if paths[0].Equals(&paths[1]) {
		t.Errorf("alternate duplicates the primary path")
	}
	for _, path := range paths {
		want := pathCost(t, g, weight, path.Nodes)
		if math.Abs(path.Cost-want) > 1e-9 {
			t.Errorf("path cost = %v; want segment sum %v", path.Cost, want)
		}
	}
}

func TestBestPathsSingleRoute(t *testing.T) {
	locations := []graph.Location{
		{ID: 0, Name: "a", Loc: geo.Coord{0, 0}},
		{ID: 1, Name: "b", Loc: geo.Coord{0, 1}},
	}
	g := graph.NewGraph(locations)
	g.AddEdge(0, 1, 1.0)

	paths := BestPaths(g, graph.NewDistanceWeighting(g), 0, 1)
	if len(paths) != 1 {
		t.Errorf("len(paths) = %v; want 1 (no alternate exists)", len(paths))
	}
}
