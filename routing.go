package main

import (
	"fmt"

	"ecoroute/graph"
	"ecoroute/routing"
	"golang.org/x/exp/slog"
)

//**********************************************************
// routing requests and handlers
//**********************************************************

type RoutingRequest struct {
	From    string     `json:"from"`
	To      string     `json:"to"`
	Metric  MetricType `json:"metric"`
	Vehicle string     `json:"vehicle"`
	K       int        `json:"k"`
	Epsilon float64    `json:"simplify_epsilon"`
}

// HandleRoutingRequest computes the best route and at most one
// alternate between two named places. An unreachable target yields an
// empty route list, not an error.
func HandleRoutingRequest(req RoutingRequest) Result {
	from, ok := MANAGER.ResolveName(req.From)
	if !ok {
		return BadRequest(fmt.Sprintf("unknown place: %v", req.From))
	}
	to, ok := MANAGER.ResolveName(req.To)
	if !ok {
		return BadRequest(fmt.Sprintf("unknown place: %v", req.To))
	}
	if from == to {
		return BadRequest("source and destination must differ")
	}

	g, err := MANAGER.BuildGraph(req.Metric, req.K)
	if err != nil {
		return BadRequest(err.Error())
	}
	var weight graph.IWeighting
	switch req.Metric {
	case EMISSION:
		weight = graph.NewEmissionWeighting(g, MANAGER.EmissionRate(req.Vehicle))
	default:
		weight = graph.NewDistanceWeighting(g)
	}

	slog.Debug(fmt.Sprintf("routing %v -> %v (%v)", req.From, req.To, req.Metric))
	paths := routing.BestPaths(g, weight, from, to)
	if paths == nil {
		slog.Info(fmt.Sprintf("no route between %v and %v", req.From, req.To))
	}

	resp := RouteResponse{
		Metric: req.Metric.String(),
		Routes: make([]Route, 0, len(paths)),
	}
	for _, path := range paths {
		resp.Routes = append(resp.Routes, NewRoute(g, path, req.Epsilon))
	}
	return OK(resp)
}

// HandlePlacesRequest lists the loaded locations.
func HandlePlacesRequest() Result {
	return OK(NewPlacesResponse(MANAGER.Locations()))
}
