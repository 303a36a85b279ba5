package gsq

// Package gsq implements the Geological Survey open-data portal client:
// polygon-constrained dataset search against the CKAN package_search action
// with result pagination, optional precise point-in-polygon filtering, and
// bulk resource download into per-dataset directories. Calls are atomic from
// the caller's view: one call returns a result payload or an error, with no
// retry or caching.
