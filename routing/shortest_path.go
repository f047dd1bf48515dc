package routing

import (
	"ecoroute/graph"
)

// INFINITY is the finite sentinel used for unsettled distances.
// Distances are compared against INFINITY/2 so that accumulated costs
// near the sentinel never masquerade as reachable.
const INFINITY = 1.0e18

// Path is an ordered sequence of location ids together with its
// accumulated cost. Paths are produced per query and never mutated.
type Path struct {
	Nodes []int32
	Cost  float64
}

func (self *Path) Length() int {
	return len(self.Nodes)
}

func (self *Path) Equals(other *Path) bool {
	if len(self.Nodes) != len(other.Nodes) {
		return false
	}
	for i := range self.Nodes {
		if self.Nodes[i] != other.Nodes[i] {
			return false
		}
	}
	return true
}

//*******************************************
// dijkstra core
//*******************************************

// calcDijkstra settles nodes by linear minimum extraction until the
// target is settled or no reachable node remains. At the target scale
// (a few thousand nodes) the O(V) extraction beats heap bookkeeping.
// skip_a/skip_b designate one undirected edge excluded from relaxation,
// -1/-1 for none.
func calcDijkstra(g *graph.Graph, weight graph.IWeighting, from int32, to int32, skip_a int32, skip_b int32) ([]float64, []int32) {
	v := g.NodeCount()
	dist := make([]float64, v)
	prev := make([]int32, v)
	visited := make([]bool, v)
	for i := 0; i < v; i++ {
		dist[i] = INFINITY
		prev[i] = -1
	}
	dist[from] = 0

	for {
		u := int32(-1)
		best := INFINITY
		for i := 0; i < v; i++ {
			if !visited[i] && dist[i] < best {
				best = dist[i]
				u = int32(i)
			}
		}
		if u == -1 {
			break
		}
		visited[u] = true
		if u == to {
			break
		}
		g.ForAdjacentEdges(u, func(edge int32, other int32) {
			if (u == skip_a && other == skip_b) || (u == skip_b && other == skip_a) {
				return
			}
			alt := dist[u] + weight.GetEdgeWeight(edge)
			if alt < dist[other] {
				dist[other] = alt
				prev[other] = u
			}
		})
	}
	return dist, prev
}

func unpackPath(dist []float64, prev []int32, to int32) (Path, bool) {
	if dist[to] >= INFINITY/2 {
		return Path{}, false
	}
	reversed := make([]int32, 0, 8)
	for v := to; v != -1; v = prev[v] {
		reversed = append(reversed, v)
	}
	nodes := make([]int32, len(reversed))
	for i := range reversed {
		nodes[i] = reversed[len(reversed)-1-i]
	}
	return Path{Nodes: nodes, Cost: dist[to]}, true
}

// ShortestPath runs Dijkstra between two locations. The second return
// is false when the target is unreachable, which is a legitimate
// outcome rather than an error. Callers ensure from != to.
func ShortestPath(g *graph.Graph, weight graph.IWeighting, from int32, to int32) (Path, bool) {
	dist, prev := calcDijkstra(g, weight, from, to, -1, -1)
	return unpackPath(dist, prev, to)
}

// ShortestPathExcluding runs Dijkstra while skipping relaxation across
// the undirected edge (exclude_a, exclude_b). The excluded edge is an
// explicit parameter so concurrent searches stay independent.
func ShortestPathExcluding(g *graph.Graph, weight graph.IWeighting, from int32, to int32, exclude_a int32, exclude_b int32) (Path, bool) {
	dist, prev := calcDijkstra(g, weight, from, to, exclude_a, exclude_b)
	return unpackPath(dist, prev, to)
}
