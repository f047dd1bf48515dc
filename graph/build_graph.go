package graph

import (
	"errors"
	"fmt"
	"math"

	"ecoroute/geo"
	"golang.org/x/exp/slog"
)

// ErrCapacityExceeded is returned when a graph build is requested for
// more locations than the configured bound. Construction is O(V^2), the
// bound keeps runs from starting work they cannot finish.
var ErrCapacityExceeded = errors.New("graph capacity exceeded")

// DEFAULT_MAX_NODES bounds graph construction when no explicit limit is
// configured. Dense construction is O(V^2), beyond a few thousand nodes
// a different graph representation would be needed.
const DEFAULT_MAX_NODES = 4000

func checkCapacity(locations []Location, max_nodes int) error {
	if max_nodes <= 0 {
		max_nodes = DEFAULT_MAX_NODES
	}
	if len(locations) > max_nodes {
		return fmt.Errorf("%w: %v locations, limit %v", ErrCapacityExceeded, len(locations), max_nodes)
	}
	return nil
}

// BuildKNNGraph builds a sparse symmetric k-nearest-neighbour graph.
// k is clamped to [1, V-1]. Neighbour selection is a partial selection
// over haversine distances, ties keep the earlier input index.
func BuildKNNGraph(locations []Location, k int, max_nodes int) (*Graph, error) {
	if err := checkCapacity(locations, max_nodes); err != nil {
		return nil, err
	}
	g := NewGraph(locations)
	v := g.NodeCount()
	if v < 2 {
		return g, nil
	}
	if k < 1 {
		k = 1
	}
	if k > v-1 {
		k = v - 1
	}

	dists := make([]float64, v)
	index := make([]int32, v)
	for u := 0; u < v; u++ {
		for i := 0; i < v; i++ {
			if i == u {
				dists[i] = math.Inf(1)
			} else {
				dists[i] = geo.HaversineDistance(locations[u].Loc, locations[i].Loc)
			}
			index[i] = int32(i)
		}
		// partial selection of the k smallest distances
		for i := 0; i < k; i++ {
			mi := i
			for j := i + 1; j < v; j++ {
				if dists[j] < dists[mi] {
					mi = j
				}
			}
			dists[i], dists[mi] = dists[mi], dists[i]
			index[i], index[mi] = index[mi], index[i]
		}
		for i := 0; i < k; i++ {
			g.AddEdge(int32(u), index[i], dists[i])
		}
	}
	slog.Debug(fmt.Sprintf("built %v-NN graph with %v nodes and %v edges", k, g.NodeCount(), g.EdgeCount()))
	return g, nil
}

// BuildCompleteGraph connects every pair of locations. Required when
// traffic is sampled per-edge rather than per-neighbourhood.
func BuildCompleteGraph(locations []Location, max_nodes int) (*Graph, error) {
	if err := checkCapacity(locations, max_nodes); err != nil {
		return nil, err
	}
	g := NewGraph(locations)
	v := g.NodeCount()
	for i := 0; i < v; i++ {
		for j := i + 1; j < v; j++ {
			g.AddEdge(int32(i), int32(j), geo.HaversineDistance(locations[i].Loc, locations[j].Loc))
		}
	}
	slog.Debug(fmt.Sprintf("built complete graph with %v nodes and %v edges", g.NodeCount(), g.EdgeCount()))
	return g, nil
}
