package geo

import (
	"math"

	"github.com/paulmach/orb"
)

//*******************************************
// coordinates
//*******************************************

// Coord is a geographic coordinate as [lon, lat] in degrees.
type Coord [2]float64

func (self Coord) Lon() float64 {
	return self[0]
}
func (self Coord) Lat() float64 {
	return self[1]
}

// Point converts to the orb representation (also [lon, lat]).
func (self Coord) Point() orb.Point {
	return orb.Point(self)
}

type CoordArray []Coord

func (self CoordArray) LineString() orb.LineString {
	line := make(orb.LineString, len(self))
	for i, c := range self {
		line[i] = c.Point()
	}
	return line
}

//*******************************************
// spherical distance
//*******************************************

const EARTH_RADIUS_KM = 6371.0

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineDistance computes the great-circle distance between two
// coordinates in km.
func HaversineDistance(a Coord, b Coord) float64 {
	lat1 := deg2rad(a.Lat())
	lat2 := deg2rad(b.Lat())
	dlat := deg2rad(b.Lat() - a.Lat())
	dlon := deg2rad(b.Lon() - a.Lon())
	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EARTH_RADIUS_KM * c
}

// Midpoint returns the arithmetic midpoint of two coordinates.
func Midpoint(a Coord, b Coord) Coord {
	return Coord{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

//*******************************************
// planar helpers
//*******************************************

// DistToSegmentSquared computes the squared distance from point p to the
// segment a-b, clamping the projection parameter to [0, 1]. A zero-length
// segment falls back to the point-to-point distance.
//
// Units are those of the input coordinates.
func DistToSegmentSquared(a Coord, b Coord, p Coord) float64 {
	vx := b[0] - a[0]
	vy := b[1] - a[1]
	wx := p[0] - a[0]
	wy := p[1] - a[1]
	vv := vx*vx + vy*vy
	if vv == 0 {
		return wx*wx + wy*wy
	}
	t := (vx*wx + vy*wy) / vv
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	dx := p[0] - (a[0] + t*vx)
	dy := p[1] - (a[1] + t*vy)
	return dx*dx + dy*dy
}
