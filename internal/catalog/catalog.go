// Package catalog holds the static configuration tables behind the form
// dropdowns: predefined search regions, data-type categories with their portal
// filters and suggested search terms, and resource-format filters. The tables
// are plain lookups keyed by display name, loaded from an embedded YAML file.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gsqget/gsq-downloader/internal/model"
)

//go:embed catalog.yaml
var catalogYAML []byte

// CustomRegionName marks the region entry with no predefined coordinates.
const CustomRegionName = "Custom Polygon"

// Region is a predefined search area with display coordinates in lat,lon order.
type Region struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Coordinates [][2]float64 `yaml:"coordinates"`
}

// Polygon returns the region's ring as a model polygon.
func (r Region) Polygon() model.Polygon {
	p := make(model.Polygon, len(r.Coordinates))
	for i, c := range r.Coordinates {
		p[i] = model.Coordinate{Lat: c[0], Lon: c[1]}
	}
	return p
}

// IsCustom reports whether the user supplies their own coordinates.
func (r Region) IsCustom() bool {
	return len(r.Coordinates) == 0
}

// DataType is a portal data category with its filter query and suggested terms.
type DataType struct {
	Name   string   `yaml:"name"`
	Filter string   `yaml:"filter"` // portal fq fragment, empty for all categories
	Terms  []string `yaml:"terms"`
}

// FileFormat is a resource-format filter. An empty Formats list means all.
type FileFormat struct {
	Name    string   `yaml:"name"`
	Formats []string `yaml:"formats"`
}

// Catalog bundles all static option tables.
type Catalog struct {
	Regions     []Region     `yaml:"regions"`
	DataTypes   []DataType   `yaml:"data_types"`
	FileFormats []FileFormat `yaml:"file_formats"`
}

// Load parses a catalog from YAML.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Regions) == 0 || len(c.DataTypes) == 0 || len(c.FileFormats) == 0 {
		return nil, fmt.Errorf("catalog is missing regions, data types, or file formats")
	}
	return &c, nil
}

// Default returns the embedded catalog. The embedded file is validated by
// tests, so a parse failure here is a programming error.
func Default() *Catalog {
	c, err := Load(catalogYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// RegionNames returns region names in file order for dropdowns.
func (c *Catalog) RegionNames() []string {
	names := make([]string, len(c.Regions))
	for i, r := range c.Regions {
		names[i] = r.Name
	}
	return names
}

// DataTypeNames returns data type names in file order.
func (c *Catalog) DataTypeNames() []string {
	names := make([]string, len(c.DataTypes))
	for i, dt := range c.DataTypes {
		names[i] = dt.Name
	}
	return names
}

// FileFormatNames returns file format names in file order.
func (c *Catalog) FileFormatNames() []string {
	names := make([]string, len(c.FileFormats))
	for i, f := range c.FileFormats {
		names[i] = f.Name
	}
	return names
}

// RegionByName looks up a region; ok is false for unknown names.
func (c *Catalog) RegionByName(name string) (Region, bool) {
	for _, r := range c.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// DataTypeByName looks up a data type; ok is false for unknown names.
func (c *Catalog) DataTypeByName(name string) (DataType, bool) {
	for _, dt := range c.DataTypes {
		if dt.Name == name {
			return dt, true
		}
	}
	return DataType{}, false
}

// FileFormatByName looks up a format filter; ok is false for unknown names.
func (c *Catalog) FileFormatByName(name string) (FileFormat, bool) {
	for _, f := range c.FileFormats {
		if f.Name == name {
			return f, true
		}
	}
	return FileFormat{}, false
}
