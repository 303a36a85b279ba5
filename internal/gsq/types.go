package gsq

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"

	"github.com/gsqget/gsq-downloader/internal/model"
)

// CKAN action API wire types. Only the fields this client reads are mapped.

type searchResponse struct {
	Success bool          `json:"success"`
	Error   *apiError     `json:"error,omitempty"`
	Result  searchPayload `json:"result"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"__type"`
}

type searchPayload struct {
	Count   int             `json:"count"`
	Results []packageRecord `json:"results"`
}

type packageRecord struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Type      string           `json:"type"`
	Notes     string           `json:"notes"`
	Spatial   string           `json:"spatial"` // GeoJSON geometry embedded as a string
	Resources []resourceRecord `json:"resources"`
}

type resourceRecord struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Format string `json:"format"`
	URL    string `json:"url"`
	Size   int64  `json:"size"`
}

// toDataset converts a portal record into the domain model, deriving a
// representative point from the record's spatial geometry when present.
func (r packageRecord) toDataset() model.Dataset {
	ds := model.Dataset{
		ID:    r.ID,
		Title: r.Title,
		Type:  r.Type,
		Notes: r.Notes,
	}

	for _, res := range r.Resources {
		ds.Resources = append(ds.Resources, model.Resource{
			ID:     res.ID,
			Name:   res.Name,
			Format: strings.ToUpper(res.Format),
			URL:    res.URL,
			Size:   res.Size,
		})
	}

	if pt, ok := spatialPoint(r.Spatial); ok {
		ds.Lon, ds.Lat = pt[0], pt[1]
		ds.HasPoint = true
	}

	return ds
}

// spatialPoint reduces a GeoJSON geometry to a representative point: the
// point itself, or the centroid for area geometries.
func spatialPoint(spatial string) (orb.Point, bool) {
	spatial = strings.TrimSpace(spatial)
	if spatial == "" {
		return orb.Point{}, false
	}

	geom, err := geojson.UnmarshalGeometry([]byte(spatial))
	if err != nil {
		return orb.Point{}, false
	}

	g := geom.Geometry()
	if pt, ok := g.(orb.Point); ok {
		return pt, true
	}

	centroid, _ := planar.CentroidArea(g)
	return centroid, true
}
