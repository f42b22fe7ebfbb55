// Package http implements the publisher's HTTP transport.
//
// It serves the authoritative catalog snapshot, the checksum manifest the
// client verifies downloads against, and the build version. Request tracing,
// access logging and response compression are handled by middleware in this
// package before requests reach the service layer.
package http
