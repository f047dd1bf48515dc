package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"ecoroute/geo"
	"ecoroute/graph"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm place extraction
//*******************************************

// ParseOSMPlaces extracts named place nodes (place=city/town/village/
// suburb/...) from an OSM pbf extract and returns them as locations in
// scan order.
func ParseOSMPlaces(pbf_file string) ([]graph.Location, error) {
	file, err := os.Open(pbf_file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputData, err)
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	locations := make([]graph.Location, 0, 64)
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			tags := object.TagMap()
			name := tags["name"]
			if name == "" || tags["place"] == "" {
				continue
			}
			locations = append(locations, graph.Location{
				ID:   int32(len(locations)),
				Name: name,
				Loc:  geo.Coord{object.Lon, object.Lat},
			})
		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputData, err)
	}
	if len(locations) < 2 {
		return nil, fmt.Errorf("%w: %v: need at least 2 named places, got %v", ErrInputData, pbf_file, len(locations))
	}
	slog.Info(fmt.Sprintf("extracted %v named places from %v", len(locations), pbf_file))
	return locations, nil
}
