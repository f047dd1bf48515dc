package graph

//*******************************************
// weighting interface
//*******************************************

// IWeighting maps an edge to the cost the path search minimizes. The
// search itself is cost-model-agnostic.
type IWeighting interface {
	GetEdgeWeight(edge int32) float64
}

//*******************************************
// raw distance weighting
//*******************************************

type DistanceWeighting struct {
	g *Graph
}

func NewDistanceWeighting(g *Graph) *DistanceWeighting {
	return &DistanceWeighting{g: g}
}

func (self *DistanceWeighting) GetEdgeWeight(edge int32) float64 {
	return self.g.GetEdge(edge).Distance
}

//*******************************************
// emission weighting
//*******************************************

// EmissionWeighting weighs edges by emitted CO2 in grams: great-circle
// distance scaled by the cached traffic factor and the vehicle's g/km
// rate.
type EmissionWeighting struct {
	g    *Graph
	rate float64
}

func NewEmissionWeighting(g *Graph, rate_per_km float64) *EmissionWeighting {
	return &EmissionWeighting{g: g, rate: rate_per_km}
}

func (self *EmissionWeighting) GetEdgeWeight(edge int32) float64 {
	e := self.g.GetEdge(edge)
	return e.Distance * e.Factor * self.rate
}
