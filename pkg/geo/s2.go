package geo

import (
	"github.com/golang/geo/s2"
)

// DistanceApproximator. fixed-destination great-circle distance, precomputed
// once per route request and queried for every expanded node. backed by s2
// so repeated queries avoid re-projecting the destination.
type DistanceApproximator struct {
	dest s2.Point
}

func NewDistanceApproximator(dest Coordinate) *DistanceApproximator {
	return &DistanceApproximator{
		dest: s2.PointFromLatLng(s2.LatLngFromDegrees(dest.Lat, dest.Lon)),
	}
}

// DistanceTo. great-circle distance from c to the destination, in meters.
func (da *DistanceApproximator) DistanceTo(c Coordinate) float64 {
	p := s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon))
	return p.Distance(da.dest).Radians() * earthRadiusKM * 1000.0
}
