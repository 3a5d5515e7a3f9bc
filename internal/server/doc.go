// Package server runs the ingest simulator HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
