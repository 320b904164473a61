// Package cli wires the cobra command line interface: flag definitions,
// viper configuration loading and API key lookup.
package cli
