// Package config handles teller configuration.
//
// Settings come from three layers, later layers winning: built-in defaults,
// the teller.yml config file, and environment variables. The source of every
// attribute is tracked so `tellerctl configuration show` can report where a
// value came from.
package config
