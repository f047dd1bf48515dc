package parser

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ecoroute/geo"
	"ecoroute/graph"
	"golang.org/x/exp/slog"
)

// ErrInputData marks malformed or missing location records. The load is
// fatal, the caller decides whether to abort or fall back elsewhere.
var ErrInputData = errors.New("invalid location data")

//*******************************************
// place file parsing
//*******************************************

// ParsePlaces reads named locations from a text file. Two encodings are
// accepted and detected per line: "Name lat lon" (whitespace-separated)
// and "Name,lon,lat" (comma-separated). Blank lines and '#' comments
// are skipped. At least two locations are required.
func ParsePlaces(file string) ([]graph.Location, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputData, err)
	}
	locations := make([]graph.Location, 0, 64)
	for number, line := range strings.Split(string(data), "\n") {
		if comment := strings.IndexByte(line, '#'); comment >= 0 {
			line = line[:comment]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var location graph.Location
		if strings.ContainsRune(line, ',') {
			location, err = parseCommaRecord(line)
		} else {
			location, err = parseSpaceRecord(line)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v line %v: %v", ErrInputData, file, number+1, err)
		}
		location.ID = int32(len(locations))
		locations = append(locations, location)
	}
	if len(locations) < 2 {
		return nil, fmt.Errorf("%w: %v: need at least 2 locations, got %v", ErrInputData, file, len(locations))
	}
	slog.Info(fmt.Sprintf("loaded %v places from %v", len(locations), file))
	return locations, nil
}

// "Name,lon,lat"
func parseCommaRecord(line string) (graph.Location, error) {
	fields := strings.SplitN(line, ",", 3)
	if len(fields) != 3 {
		return graph.Location{}, errors.New("expected name,lon,lat")
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return graph.Location{}, err
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return graph.Location{}, err
	}
	return graph.Location{Name: strings.TrimSpace(fields[0]), Loc: geo.Coord{lon, lat}}, nil
}

// "Name lat lon"
func parseSpaceRecord(line string) (graph.Location, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return graph.Location{}, errors.New("expected name lat lon")
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return graph.Location{}, err
	}
	lon, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return graph.Location{}, err
	}
	return graph.Location{Name: fields[0], Loc: geo.Coord{lon, lat}}, nil
}

// WritePlaces writes locations back to disk in the comma encoding, so
// that name and coordinates survive a lossless round trip through
// ParsePlaces.
func WritePlaces(file string, locations []graph.Location) error {
	var builder strings.Builder
	for _, location := range locations {
		builder.WriteString(location.Name)
		builder.WriteString(",")
		builder.WriteString(strconv.FormatFloat(location.Loc.Lon(), 'f', -1, 64))
		builder.WriteString(",")
		builder.WriteString(strconv.FormatFloat(location.Loc.Lat(), 'f', -1, 64))
		builder.WriteString("\n")
	}
	return os.WriteFile(file, []byte(builder.String()), 0644)
}
