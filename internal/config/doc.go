// Package config loads, normalizes, and validates biaslab configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// BIASLAB_API_BASE. A local .env file is loaded before the environment is
// consulted so development setups mirror production overrides.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical orderings, and clear validation errors.
package config
