package entities

import (
	"encoding/json"
	"fmt"
)

// Point is a geographic coordinate (WGS 84).
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polygon is an ordered sequence of vertices describing a service-area
// boundary. The platform API serves vertices in two equivalent encodings:
// GeoJSON-style `[lng, lat]` pairs and `{lat, lng}` objects. Both are
// normalized here, at the boundary, so the rest of the code only ever sees
// Point values.

type Polygon []Point

func (p *Polygon) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("polygon must be an array of vertices: %w", err)
	}

	vertices := make([]Point, 0, len(raw))
	for i, v := range raw {
		pt, err := parseVertex(v)
		if err != nil {
			return fmt.Errorf("polygon vertex %d: %w", i, err)
		}
		vertices = append(vertices, pt)
	}

	*p = vertices
	return nil
}

func parseVertex(data []byte) (Point, error) {
	var obj struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && obj.Lat != nil && obj.Lng != nil {
		return Point{Lat: *obj.Lat, Lng: *obj.Lng}, nil
	}

	// GeoJSON ordering: longitude first.
	var pair []float64
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) < 2 {
			return Point{}, fmt.Errorf("coordinate pair has %d elements", len(pair))
		}
		return Point{Lat: pair[1], Lng: pair[0]}, nil
	}

	return Point{}, fmt.Errorf("unsupported vertex encoding %q", string(data))
}
