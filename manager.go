package main

import (
	"fmt"
	"strings"

	"ecoroute/graph"
	"ecoroute/parser"
	"ecoroute/traffic"
	"golang.org/x/exp/slog"
)

//**********************************************************
// routing manager
//**********************************************************

// RoutingManager owns the loaded locations and the run-wide traffic
// cache. Graphs are built per query; the only state shared between
// queries is the on-disk cache.
type RoutingManager struct {
	config    Config
	locations []graph.Location
	names     map[string]int32
	emissions *EmissionTable
	cache     *traffic.Cache
	sampler   traffic.ISampler
}

func NewRoutingManager(config Config) (*RoutingManager, error) {
	var locations []graph.Location
	var err error
	if config.Places.OSM != "" {
		locations, err = parser.ParseOSMPlaces(config.Places.OSM)
	} else {
		locations, err = parser.ParsePlaces(config.Places.File)
	}
	if err != nil {
		return nil, err
	}

	names := make(map[string]int32, len(locations))
	for _, location := range locations {
		names[strings.ToLower(location.Name)] = location.ID
	}

	var sampler traffic.ISampler
	if config.Traffic.TomTomKey != "" {
		sampler = traffic.NewTomTomSampler(config.Traffic.TomTomKey)
	} else {
		slog.Info("no traffic provider configured, assuming free flow")
		sampler = traffic.FreeFlowSampler{}
	}

	return &RoutingManager{
		config:    config,
		locations: locations,
		names:     names,
		emissions: LoadEmissionTable(config.Vehicles.Table, config.Vehicles.DefaultCO2),
		cache:     traffic.NewCache(config.Traffic.CacheFile),
		sampler:   sampler,
	}, nil
}

func (self *RoutingManager) Locations() []graph.Location {
	return self.locations
}

// ResolveName maps a place name to its location id, case-insensitively.
func (self *RoutingManager) ResolveName(name string) (int32, bool) {
	id, ok := self.names[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// BuildGraph constructs the graph a metric requires: a sparse k-NN
// graph for raw distance, a complete graph with traffic factors applied
// for emission weighting (traffic is sampled per edge).
func (self *RoutingManager) BuildGraph(metric MetricType, k int) (*graph.Graph, error) {
	if k <= 0 {
		k = self.config.Graph.K
	}
	switch metric {
	case EMISSION:
		g, err := graph.BuildCompleteGraph(self.locations, self.config.Graph.MaxNodes)
		if err != nil {
			return nil, err
		}
		if err := self.PrepareTraffic(g); err != nil {
			return nil, err
		}
		return g, nil
	default:
		return graph.BuildKNNGraph(self.locations, k, self.config.Graph.MaxNodes)
	}
}

// PrepareTraffic loads cached factors into g when the cache is still
// fresh and resamples otherwise. A corrupt cache counts as a miss.
func (self *RoutingManager) PrepareTraffic(g *graph.Graph) error {
	ttl := self.config.Traffic.TTLMinutes
	if self.cache.IsFresh(ttl) {
		if err := self.cache.Load(g); err == nil {
			slog.Info(fmt.Sprintf("loaded traffic factors from cache (TTL %v min)", ttl))
			return nil
		} else {
			slog.Warn("traffic cache unreadable, resampling: " + err.Error())
		}
	}
	slog.Info("resampling traffic factors")
	return self.cache.Refresh(g, self.config.Traffic.SampleEveryN, self.sampler)
}

// EmissionRate returns the g/km rate for a vehicle model.
func (self *RoutingManager) EmissionRate(model string) float64 {
	return self.emissions.Rate(model)
}
