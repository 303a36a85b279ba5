package model

import "testing"

func TestPolygon_VertexCount(t *testing.T) {
	open := Polygon{{-21, 139}, {-21, 141}, {-20, 141}}
	if open.VertexCount() != 3 {
		t.Errorf("VertexCount() for open ring = %d, expected 3", open.VertexCount())
	}
	if open.IsClosed() {
		t.Error("open ring reported as closed")
	}

	closed := Polygon{{-21, 139}, {-21, 141}, {-20, 141}, {-21, 139}}
	if closed.VertexCount() != 3 {
		t.Errorf("VertexCount() for closed ring = %d, expected 3", closed.VertexCount())
	}
	if !closed.IsClosed() {
		t.Error("closed ring reported as open")
	}
}

func TestPolygon_LonLat(t *testing.T) {
	p := Polygon{{-21.0, 139.0}, {-20.0, 141.0}}
	swapped := p.LonLat()

	if swapped[0] != [2]float64{139.0, -21.0} {
		t.Errorf("LonLat()[0] = %v, expected [139 -21]", swapped[0])
	}
	if swapped[1] != [2]float64{141.0, -20.0} {
		t.Errorf("LonLat()[1] = %v, expected [141 -20]", swapped[1])
	}
}

func TestPolygon_BoundingBox(t *testing.T) {
	p := Polygon{{-21, 139}, {-21, 141}, {-20, 141}, {-20, 139}, {-21, 139}}
	minLon, minLat, maxLon, maxLat := p.BoundingBox()

	if minLon != 139 || maxLon != 141 || minLat != -21 || maxLat != -20 {
		t.Errorf("BoundingBox() = %g,%g,%g,%g, expected 139,-21,141,-20", minLon, minLat, maxLon, maxLat)
	}
}

func TestCoordinate_String(t *testing.T) {
	c := Coordinate{Lat: -21.0, Lon: 139.5}
	if c.String() != "-21,139.5" {
		t.Errorf("String() = %s, expected -21,139.5", c.String())
	}
}
