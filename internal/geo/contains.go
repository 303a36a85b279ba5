package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/gsqget/gsq-downloader/internal/model"
)

// toOrbPolygon converts a closed lat/lon ring to an orb polygon in the
// lon/lat axis order orb expects.
func toOrbPolygon(p model.Polygon) orb.Polygon {
	ring := make(orb.Ring, 0, len(p)+1)
	for _, c := range p {
		ring = append(ring, orb.Point{c.Lon, c.Lat})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

// Contains reports whether the point (lon, lat) lies inside the polygon.
// This is the precise test behind the "precise filtering" option, as opposed
// to the coarse bounding-box query sent to the portal.
func Contains(p model.Polygon, lon, lat float64) bool {
	if p.VertexCount() < MinPolygonVertices {
		return false
	}
	return planar.PolygonContains(toOrbPolygon(p), orb.Point{lon, lat})
}
