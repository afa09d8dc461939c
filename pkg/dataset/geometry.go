package dataset

import (
	"github.com/gnames/pandata/pkg/matrix"
	"github.com/golang/geo/s2"
)

// Depth columns in order of preference.
var depthKeys = []string{"Depth water", "Depth", "Depth ice/snow", "Depth soil"}

// Geometry names the topology of loaded data from the number of
// distinct locations, location-times and location-depths:
// point, profile, timeSeries, timeSeriesProfile, trajectory or
// trajectoryProfile. It returns "" when Data has no coordinates.
func (d *Dataset) Geometry() string {
	loc := []string{matrix.KeyLatitude, matrix.KeyLongitude}
	p := d.Data.Distinct(loc...)
	if p == 0 {
		return ""
	}

	pt, pz := p, p
	if d.Data.Has(matrix.KeyDateTime) {
		pt = d.Data.Distinct(append(loc, matrix.KeyDateTime)...)
	}
	for _, z := range depthKeys {
		if d.Data.Has(z) {
			pz = d.Data.Distinct(append(loc, z)...)
			break
		}
	}

	if p == 1 {
		switch {
		case pt == 1 && pz == 1:
			return "point"
		case pt == 1:
			return "profile"
		case pz == 1:
			return "timeSeries"
		default:
			return "timeSeriesProfile"
		}
	}
	switch {
	case p == pz:
		return "trajectory"
	case pt > pz:
		return "timeSeriesProfile"
	default:
		return "trajectoryProfile"
	}
}

// EventBounds returns the smallest latitude-longitude rectangle that
// contains start and end positions of all events. The rectangle is
// empty when no event has coordinates.
func (d *Dataset) EventBounds() s2.Rect {
	res := s2.EmptyRect()
	for _, ev := range d.Events {
		if ev.Latitude != nil && ev.Longitude != nil {
			res = res.AddPoint(s2.LatLngFromDegrees(*ev.Latitude, *ev.Longitude))
		}
		if ev.Latitude2 != nil && ev.Longitude2 != nil {
			res = res.AddPoint(s2.LatLngFromDegrees(*ev.Latitude2, *ev.Longitude2))
		}
	}
	return res
}
