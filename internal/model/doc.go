package model

// Package model defines domain data structures used across the app: geographic
// coordinates and polygons, search configuration, dataset records, download
// reports, and the job status enum. Structures are designed for direct binding
// in the UI and explicit state transitions.
