// Package schema checks catalog entities against the structural rules of
// the catalog format: required spec fields per kind, the shape of names
// and tags, and reference fields a kind does not use.
//
// Findings are returned as catalog.Issue values. None of them stop an
// entity from being indexed or shown.
package schema
