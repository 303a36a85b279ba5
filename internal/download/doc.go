package download

// Package download runs search and download jobs off the UI thread. It
// enforces a single active job, owns the status transitions, and propagates
// job updates to the UI through a callback. Cancellation is context based:
// cancelling a job stops the portal client between requests, though the
// request in flight may still complete.
