package geo

import "fmt"

// Bounds is the rectangular region all entered coordinates must fall inside.
type Bounds struct {
	Name   string
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// QueenslandBounds covers the Geological Survey of Queensland coverage area.
var QueenslandBounds = Bounds{
	Name:   "Queensland",
	MinLat: -29,
	MaxLat: -10,
	MinLon: 138,
	MaxLon: 154,
}

// CheckLat returns an error naming the value if lat falls outside the bounds.
func (b Bounds) CheckLat(lat float64) error {
	if lat < b.MinLat || lat > b.MaxLat {
		return fmt.Errorf("latitude %g outside %s range (%g to %g)", lat, b.Name, b.MinLat, b.MaxLat)
	}
	return nil
}

// CheckLon returns an error naming the value if lon falls outside the bounds.
func (b Bounds) CheckLon(lon float64) error {
	if lon < b.MinLon || lon > b.MaxLon {
		return fmt.Errorf("longitude %g outside %s range (%g to %g)", lon, b.Name, b.MinLon, b.MaxLon)
	}
	return nil
}
