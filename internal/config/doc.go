// ABOUTME: Configuration package for the cwgen command
// ABOUTME: Defaults plus optional TOML or YAML files
// Package config holds the command's configuration.
//
// Values start from Default, are overlaid by an optional file and finally by
// explicitly set command-line flags. Files use sections matching the
// pipeline stages:
//
//	[timing]
//	wpm = 20
//	length_standard_deviation = 0.05
//
//	[noise]
//	kind = "brown"
//	level = 0.2
package config
