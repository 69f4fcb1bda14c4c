// Package config provides configuration loading, merging, and validation
// facilities for the fitsync client and the bin server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON, YAML or TOML config file
//  3. .env file
//  4. Environment variables
//  5. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig]; both
// read files through an afero.Fs so tests can run on an in-memory tree.
package config
