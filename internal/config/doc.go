// Package config defines the simulator settings and provides helpers to
// load, validate and save them in YAML format.
//
// The Config type holds the workload shape (source count, tick interval,
// class names) plus the log level and the optional metrics listen address.
package config
