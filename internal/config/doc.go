// Package config loads application settings from defaults, an optional
// config.yaml and COURSELIB_ environment variables, and validates them
// before any component is built.
package config
