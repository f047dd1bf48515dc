package graph

import (
	"ecoroute/geo"
)

//*******************************************
// graph
//*******************************************

// Graph is an undirected graph over a fixed set of locations. It is an
// explicit value owned by the run that built it; nothing is shared
// between queries.
type Graph struct {
	nodes     []Location
	edges     []Edge
	adjacency [][]int32
}

func NewGraph(locations []Location) *Graph {
	nodes := make([]Location, len(locations))
	copy(nodes, locations)
	return &Graph{
		nodes:     nodes,
		edges:     make([]Edge, 0, len(locations)),
		adjacency: make([][]int32, len(locations)),
	}
}

func (self *Graph) NodeCount() int {
	return len(self.nodes)
}
func (self *Graph) EdgeCount() int {
	return len(self.edges)
}
func (self *Graph) GetNode(node int32) Location {
	return self.nodes[node]
}
func (self *Graph) GetEdge(edge int32) Edge {
	return self.edges[edge]
}

// AddEdge inserts an undirected edge between u and v with the given
// distance. Self-edges and out-of-range ids are ignored, duplicate pairs
// keep the first edge.
func (self *Graph) AddEdge(u int32, v int32, distance float64) {
	if u == v || u < 0 || v < 0 || int(u) >= len(self.nodes) || int(v) >= len(self.nodes) {
		return
	}
	if u > v {
		u, v = v, u
	}
	if _, ok := self.GetEdgeBetween(u, v); ok {
		return
	}
	id := int32(len(self.edges))
	self.edges = append(self.edges, Edge{
		NodeA:    u,
		NodeB:    v,
		Distance: distance,
		Factor:   MIN_TRAFFIC_FACTOR,
	})
	self.adjacency[u] = append(self.adjacency[u], id)
	self.adjacency[v] = append(self.adjacency[v], id)
}

// GetEdgeBetween returns the id of the edge connecting u and v.
func (self *Graph) GetEdgeBetween(u int32, v int32) (int32, bool) {
	if u < 0 || v < 0 || int(u) >= len(self.nodes) || int(v) >= len(self.nodes) {
		return -1, false
	}
	for _, id := range self.adjacency[u] {
		edge := self.edges[id]
		if edge.NodeA == v || edge.NodeB == v {
			return id, true
		}
	}
	return -1, false
}

// ForAdjacentEdges visits every edge incident to node, passing the edge
// id and the node on the other end.
func (self *Graph) ForAdjacentEdges(node int32, callback func(edge int32, other int32)) {
	for _, id := range self.adjacency[node] {
		e := self.edges[id]
		other := e.NodeA
		if other == node {
			other = e.NodeB
		}
		callback(id, other)
	}
}

// SetFactor assigns a traffic factor to an edge, clamped to the valid
// range. Factors apply to both directions since edges are undirected.
func (self *Graph) SetFactor(edge int32, factor float64) {
	self.edges[edge].Factor = ClampFactor(factor)
}

// ResetFactors sets every traffic factor back to the free-flow default.
func (self *Graph) ResetFactors() {
	for i := range self.edges {
		self.edges[i].Factor = MIN_TRAFFIC_FACTOR
	}
}

// EdgeMidpoint returns the midpoint between the two endpoints of an
// edge, the coordinate traffic conditions are sampled at.
func (self *Graph) EdgeMidpoint(edge int32) geo.Coord {
	e := self.edges[edge]
	return geo.Midpoint(self.nodes[e.NodeA].Loc, self.nodes[e.NodeB].Loc)
}
