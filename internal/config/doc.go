// Package config loads, normalizes, and validates unitshift configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// UNITSHIFT_PRECISION. The Config type centralizes the output precision,
// logging, and history settings the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
