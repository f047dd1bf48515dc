package graph

import (
	"ecoroute/geo"
)

//*******************************************
// graph structs
//*******************************************

// Location is a named place with a stable index id. Locations are
// loaded once per run and never mutated afterwards.
type Location struct {
	ID   int32
	Name string
	Loc  geo.Coord
}

// Edge is an undirected connection between two locations. NodeA < NodeB
// always holds. The traffic factor is a congestion multiplier in
// [MIN_TRAFFIC_FACTOR, MAX_TRAFFIC_FACTOR].
type Edge struct {
	NodeA    int32
	NodeB    int32
	Distance float64
	Factor   float64
}

const (
	MIN_TRAFFIC_FACTOR = 1.0
	MAX_TRAFFIC_FACTOR = 4.0
)

// ClampFactor forces a traffic factor into its valid range.
func ClampFactor(factor float64) float64 {
	if factor < MIN_TRAFFIC_FACTOR {
		return MIN_TRAFFIC_FACTOR
	}
	if factor > MAX_TRAFFIC_FACTOR {
		return MAX_TRAFFIC_FACTOR
	}
	return factor
}
