// Package server runs the publisher's HTTP server.
//
// It handles startup, signal handling and graceful shutdown.
package server
