// Package dag holds a small directed graph over integer ids and the cycle
// queries the catalog needs: group parent chains and dependsOn edges are
// both expected to be acyclic, and both can contain cycles in practice.
//
// Nodes and edges keep their insertion order so every query is deterministic.
package dag
