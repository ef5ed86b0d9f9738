// Package config provides configuration loading, merging, and validation
// facilities for the omnisearch client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags explicitly set by the user
//  2. Environment variables prefixed with OMNISEARCH_
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
