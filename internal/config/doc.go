// Package config provides configuration loading, merging, and validation
// facilities for the client and the snapshot publisher.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (comments and trailing commas allowed)
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] and [GetPublisherConfig].
package config
