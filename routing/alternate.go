package routing

import (
	"ecoroute/graph"
)

//*******************************************
// bounded alternate search
//*******************************************

// BestPaths returns the shortest path and at most one alternate.
//
// The alternate is derived by spurring along the primary path: for each
// consecutive edge of it, a search from the spur node to the target with
// that single edge excluded produces a candidate, built by splicing the
// primary prefix with the returned suffix and re-accumulating the cost
// segment by segment. Candidates with an identical node sequence are
// dropped and the cheapest survivor is kept.
//
// This is a single-alternate restriction of the general K-shortest-paths
// procedure: an alternate whose derivation would require excluding an
// edge off the primary path is never found. That restriction is
// intentional and load-bearing for callers comparing routes.
func BestPaths(g *graph.Graph, weight graph.IWeighting, from int32, to int32) []Path {
	best, ok := ShortestPath(g, weight, from, to)
	if !ok {
		return nil
	}
	paths := []Path{best}

	candidates := make([]Path, 0, best.Length())
	for i := 0; i < best.Length()-1; i++ {
		spur := best.Nodes[i]
		skip_a := best.Nodes[i]
		skip_b := best.Nodes[i+1]
		suffix, ok := ShortestPathExcluding(g, weight, spur, to, skip_a, skip_b)
		if !ok {
			continue
		}

		nodes := make([]int32, 0, i+suffix.Length())
		nodes = append(nodes, best.Nodes[:i+1]...)
		nodes = append(nodes, suffix.Nodes[1:]...)
		cost := 0.0
		valid := true
		for j := 1; j < len(nodes); j++ {
			edge, ok := g.GetEdgeBetween(nodes[j-1], nodes[j])
			if !ok {
				valid = false
				break
			}
			cost += weight.GetEdgeWeight(edge)
		}
		if !valid {
			continue
		}
		candidate := Path{Nodes: nodes, Cost: cost}

		duplicate := candidate.Equals(&best)
		for k := range candidates {
			if candidates[k].Equals(&candidate) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			candidates = append(candidates, candidate)
		}
	}

	if len(candidates) == 0 {
		return paths
	}
	cheapest := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Cost < candidates[cheapest].Cost {
			cheapest = i
		}
	}
	return append(paths, candidates[cheapest])
}
