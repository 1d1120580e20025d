// Package config provides configuration loading, merging, and validation
// for the class-reports server and admin client.
//
// Configuration is assembled from the following sources; a field set by an
// earlier source is never overridden by a later one:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON or YAML config file
//  4. Defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the admin CLI.
package config
