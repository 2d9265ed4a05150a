// Package config holds viewer settings loaded from YAML, with defaults that
// reproduce the stock invocation: the bundled sample tile, every 10th point,
// elevation coloring, a 1200x900 window and 2px points on dark gray.
package config
