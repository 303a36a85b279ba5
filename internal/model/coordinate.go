package model

import "fmt"

// Coordinate is a geographic point in latitude/longitude order, matching the
// order users type coordinates into the search-area form.
type Coordinate struct {
	Lat float64
	Lon float64
}

// String formats the coordinate the same way it is entered: "lat,lon".
func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Lat, c.Lon)
}

// Polygon is an ordered ring of coordinates. A valid polygon is closed: the
// first vertex is repeated as the last one.
type Polygon []Coordinate

// VertexCount returns the number of distinct vertices, not counting the
// closing repetition of the first vertex.
func (p Polygon) VertexCount() int {
	if len(p) > 1 && p[0] == p[len(p)-1] {
		return len(p) - 1
	}
	return len(p)
}

// IsClosed reports whether the ring ends where it starts.
func (p Polygon) IsClosed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// LonLat returns the ring with the axis order swapped to longitude/latitude,
// the order the portal API expects. A pure per-element swap, not a projection.
func (p Polygon) LonLat() [][2]float64 {
	out := make([][2]float64, len(p))
	for i, c := range p {
		out[i] = [2]float64{c.Lon, c.Lat}
	}
	return out
}

// BoundingBox returns minLon, minLat, maxLon, maxLat of the ring. Used for the
// coarse spatial query before precise filtering.
func (p Polygon) BoundingBox() (minLon, minLat, maxLon, maxLat float64) {
	if len(p) == 0 {
		return 0, 0, 0, 0
	}
	minLon, maxLon = p[0].Lon, p[0].Lon
	minLat, maxLat = p[0].Lat, p[0].Lat
	for _, c := range p[1:] {
		if c.Lon < minLon {
			minLon = c.Lon
		}
		if c.Lon > maxLon {
			maxLon = c.Lon
		}
		if c.Lat < minLat {
			minLat = c.Lat
		}
		if c.Lat > maxLat {
			maxLat = c.Lat
		}
	}
	return minLon, minLat, maxLon, maxLat
}
