// Package graph provides the in-memory node/edge graph that wordweb
// materializes relationship graphs into, and its JSON serialization.
//
// # Overview
//
// A [Graph] stores nodes and edges keyed by string identifiers, each carrying
// free-form string attributes. The attribute keys [AttrLabel] and [AttrStyle]
// hold the display label and a CSS-like style string such as
// "fill-color: rgb(255,0,0);". Nodes and edges are kept in insertion order so
// that exports are deterministic.
//
// # Strictness
//
// By default a graph is non-strict and auto-creating:
//
//   - [Graph.AddNode] on an existing ID is a no-op
//   - [Graph.AddEdge] creates missing endpoint nodes
//
// Set [Options.Strict] to reject duplicate nodes, and clear
// [Options.AutoCreate] to reject edges to unknown nodes. Edge IDs are always
// unique: adding a second edge with the same ID fails with
// [ErrDuplicateEdgeID].
//
// # Serialization
//
// [MarshalGraph], [WriteGraph] and [WriteGraphFile] encode a graph as
// indented JSON; [ReadGraph] and [ReadGraphFile] decode it back. The format
// round-trips node and edge order and attributes.
//
// # Concurrency
//
// Graph is not safe for concurrent use without external synchronization.
package graph
