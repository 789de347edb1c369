package usecase

import "beachrent/internal/domain/entities"

// IsPointInPolygon reports whether the point lies inside the polygon using
// even-odd ray casting over planar lat/lng. A missing boundary or one with
// fewer than three vertices rejects the point rather than erroring: an
// unknown service area never admits a delivery point.
//
// Coordinates are treated as planar, the usual approximation for city-scale
// areas; behavior over very large polygons or across the antimeridian is
// undefined.
func IsPointInPolygon(lat, lng float64, polygon entities.Polygon) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); j, i = i, i+1 {
		yi, xi := polygon[i].Lat, polygon[i].Lng
		yj, xj := polygon[j].Lat, polygon[j].Lng

		if (yi > lat) != (yj > lat) &&
			lng < (xj-xi)*(lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// FindBeachInPolygon returns the first beach whose boundary contains the
// point, or nil when none matches. First-match order is part of the
// contract: when service areas overlap, the earlier beach in the input wins.
func FindBeachInPolygon(lat, lng float64, beaches []entities.Beach) *entities.Beach {
	for i := range beaches {
		if len(beaches[i].PolygonBoundary) == 0 {
			continue
		}
		if IsPointInPolygon(lat, lng, beaches[i].PolygonBoundary) {
			return &beaches[i]
		}
	}
	return nil
}
