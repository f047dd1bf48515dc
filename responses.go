package main

import (
	"ecoroute/geo"
	"ecoroute/graph"
	"ecoroute/routing"
	"ecoroute/simplify"
	"github.com/paulmach/orb/geojson"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

//**********************************************************
// route responses
//**********************************************************

type RouteResponse struct {
	Metric string  `json:"metric"`
	Routes []Route `json:"routes"`
}

type Route struct {
	Names    []string                   `json:"names"`
	Cost     float64                    `json:"cost"`
	Times    TravelTimes                `json:"times"`
	Geometry *geojson.FeatureCollection `json:"geometry,omitempty"`
}

// NewRoute flattens a computed path into its presentation form. When
// epsilon > 0 the returned geometry is the Douglas-Peucker reduction of
// the path polyline, otherwise the full polyline.
func NewRoute(g *graph.Graph, path routing.Path, epsilon float64) Route {
	names := make([]string, len(path.Nodes))
	points := make(geo.CoordArray, len(path.Nodes))
	for i, node := range path.Nodes {
		location := g.GetNode(node)
		names[i] = location.Name
		points[i] = location.Loc
	}

	times := TravelTimes{}
	for i := 1; i < len(path.Nodes); i++ {
		if edge, ok := g.GetEdgeBetween(path.Nodes[i-1], path.Nodes[i]); ok {
			e := g.GetEdge(edge)
			times.AddSegment(e.Distance, e.Factor)
		}
	}

	if epsilon > 0 {
		points = simplify.DouglasPeucker(points, epsilon)
	}
	collection := geojson.NewFeatureCollection()
	collection.Append(geojson.NewFeature(points.LineString()))

	return Route{
		Names:    names,
		Cost:     path.Cost,
		Times:    times,
		Geometry: collection,
	}
}

//**********************************************************
// place responses
//**********************************************************

type PlaceResponse struct {
	ID   int32   `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func NewPlacesResponse(locations []graph.Location) []PlaceResponse {
	places := make([]PlaceResponse, len(locations))
	for i, location := range locations {
		places[i] = PlaceResponse{
			ID:   location.ID,
			Name: location.Name,
			Lat:  location.Loc.Lat(),
			Lon:  location.Loc.Lon(),
		}
	}
	return places
}
