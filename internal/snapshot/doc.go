// Package snapshot builds immutable catalog snapshots and swaps them in a
// Session.
//
// A Snapshot is the result of one pass of discover, decode, construct, index
// and tree build. Nothing in it changes after Build returns. A Session holds
// the current snapshot plus the presentation state (selection, expansion,
// filter) in a View, and replaces the snapshot only when a reload fully
// succeeds.
package snapshot
