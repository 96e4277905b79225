// Package config loads, normalizes, and validates souvenirgen configuration
// data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and validates language codes as BCP 47 tags.
// The Config type centralizes every knob the generator needs: catalog and
// artifact locations, the language roster, sentinel markers, credits table
// shape, and run history settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
