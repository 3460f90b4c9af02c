// Package view renders catalog snapshots for a terminal. Every command result
// has a human rendering, with color and tables, and a JSON rendering with one
// object per line for scripts.
package view
