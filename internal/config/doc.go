// Package config provides runtime configuration loading, merging, and
// validation for the railsui command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (RAILSUI_ prefix)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
