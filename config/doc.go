// Package config loads the application configuration from TOML. Defaults
// cover a fully local setup (heuristic chatbot over a JSON catalog), so a
// config file is only needed to switch engines or backends.
package config
