package geo

// Package geo implements the coordinate parsing and validation rules for the
// search-area form: line-based "lat,lon" input, bounding-region checks, ring
// closure, and the precise point-in-polygon test used to filter search hits.
