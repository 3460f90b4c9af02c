// Package app wires the catalog visualizer together: it resolves settings
// from flags, the settings file and defaults, builds the process logger,
// performs the initial catalog load and runs the read-only commands against
// the resulting session, decoupled from the CLI that invokes them.
package app
