package entities

import (
	"encoding/json"
	"testing"
)

func TestPolygon_UnmarshalJSON(t *testing.T) {
	t.Run("object vertices", func(t *testing.T) {
		var p Polygon
		if err := json.Unmarshal([]byte(`[{"lat":-23.5,"lng":-46.2},{"lat":-23.6,"lng":-46.3}]`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(p) != 2 || p[0].Lat != -23.5 || p[0].Lng != -46.2 {
			t.Fatalf("unexpected polygon: %+v", p)
		}
	})

	t.Run("geojson pair vertices put longitude first", func(t *testing.T) {
		var p Polygon
		if err := json.Unmarshal([]byte(`[[-46.2,-23.5],[-46.3,-23.6]]`), &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p[0].Lat != -23.5 || p[0].Lng != -46.2 {
			t.Fatalf("pair ordering not normalized: %+v", p[0])
		}
	})

	t.Run("mixed encodings normalize to the same polygon", func(t *testing.T) {
		var a, b Polygon
		if err := json.Unmarshal([]byte(`[{"lat":1,"lng":2},{"lat":3,"lng":4}]`), &a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := json.Unmarshal([]byte(`[[2,1],[4,3]]`), &b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(a) != len(b) || a[0] != b[0] || a[1] != b[1] {
			t.Fatalf("encodings disagree: %+v vs %+v", a, b)
		}
	})

	t.Run("short pair is rejected", func(t *testing.T) {
		var p Polygon
		if err := json.Unmarshal([]byte(`[[-46.2]]`), &p); err == nil {
			t.Fatalf("expected error for one-element pair")
		}
	})

	t.Run("unsupported vertex is rejected", func(t *testing.T) {
		var p Polygon
		if err := json.Unmarshal([]byte(`["north"]`), &p); err == nil {
			t.Fatalf("expected error for string vertex")
		}
	})
}
