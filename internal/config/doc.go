// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following order
// (earlier sources keep their non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetDeviceConfig] for the device host and
// [GetIngestConfig] for the ingest simulator. Both apply defaults and
// validate the fields their binary needs.
package config
