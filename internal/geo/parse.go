package geo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gsqget/gsq-downloader/internal/model"
)

// CoordinateSeparator splits the two tokens on each input line.
const CoordinateSeparator = ","

// MinPolygonVertices is the minimum number of distinct vertices a search
// polygon needs before ring closure.
const MinPolygonVertices = 3

// ParsePolygon parses freeform multi-line text where each non-blank line is
// "latitude,longitude" into a closed polygon. Validation runs per line in
// order: separator presence, float parsing, latitude range, longitude range.
// If the first and last vertex differ, the first is appended to close the
// ring. Pure function of the input text and bounds.
func ParsePolygon(text string, bounds Bounds) (model.Polygon, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("no coordinates entered")
	}

	var coords model.Polygon
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		coord, err := parseLine(line, bounds)
		if err != nil {
			return nil, err
		}
		coords = append(coords, coord)
	}

	if len(coords) < MinPolygonVertices {
		return nil, fmt.Errorf("need at least %d coordinates", MinPolygonVertices)
	}

	if coords[0] != coords[len(coords)-1] {
		coords = append(coords, coords[0])
	}

	return coords, nil
}

// parseLine validates a single "lat,lon" line against the bounds.
func parseLine(line string, bounds Bounds) (model.Coordinate, error) {
	if !strings.Contains(line, CoordinateSeparator) {
		return model.Coordinate{}, fmt.Errorf("invalid format: %q (use latitude,longitude)", line)
	}

	parts := strings.Split(line, CoordinateSeparator)
	if len(parts) != 2 {
		return model.Coordinate{}, fmt.Errorf("invalid format: %q (use latitude,longitude)", line)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("error parsing line %q: latitude is not a number", line)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("error parsing line %q: longitude is not a number", line)
	}

	if err := bounds.CheckLat(lat); err != nil {
		return model.Coordinate{}, fmt.Errorf("error parsing line %q: %w", line, err)
	}
	if err := bounds.CheckLon(lon); err != nil {
		return model.Coordinate{}, fmt.Errorf("error parsing line %q: %w", line, err)
	}

	return model.Coordinate{Lat: lat, Lon: lon}, nil
}

// FormatPolygon renders a polygon back into the line format accepted by
// ParsePolygon, one "lat,lon" pair per line.
func FormatPolygon(p model.Polygon) string {
	lines := make([]string, len(p))
	for i, c := range p {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
