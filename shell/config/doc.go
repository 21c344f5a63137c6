// Package config loads the runtime configuration from the environment and
// the product catalog from a JSON file or the embedded default catalog.
package config
