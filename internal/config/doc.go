// Package config loads, merges, and validates all runtime configuration
// for the idea-vault application.
//
// Configuration is assembled from four sources, in priority order:
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults. Merging is performed field-by-field with mergo, so a
// value set by a higher-priority source is never overwritten by a lower
// one.
//
// The main entry point is [GetStructuredConfig], which returns the final
// validated [StructuredConfig] ready to be handed to constructors.
package config
