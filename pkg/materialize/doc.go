// Package materialize projects a triple index into a node/edge graph.
//
// # Overview
//
// [Materialize] walks a frozen [index.Index] subject by subject and drives a
// [Renderer]: every subject and object label becomes a node keyed by the full
// compound label, and every subject/predicate/object path becomes a directed
// edge subject → object labeled with the predicate's display form.
//
// Nodes and edges are styled from the per-run maxima computed by
// [scale.ComputeMaxima]: subject nodes are filled red in proportion to their
// link count, and edges are tinted red/blue in proportion to the number of
// predicates of their subject.
//
// # Edge IDs
//
// Edge IDs come from an [EdgeIDs] allocator that hands out strictly
// increasing integers starting at 1. An ID is never reused within a pass,
// even when the edge it was allocated for is rolled back.
//
// # Rollback
//
// If the renderer rejects an edge, the object node ensured for that edge is
// removed again when this attempt created it, and the ID is discarded. Nodes
// and edges committed earlier are untouched. Rollbacks are logged and
// counted in [Result.RolledBack]; they are never returned as errors. With
// fresh monotonic IDs a well-behaved renderer should never reject an edge.
//
// # Labels
//
// A compound label without a delimiter has no display form. With
// [LabelStrict] (the default) Materialize stops and returns the
// [errors.ErrCodeInvalidLabel] error; with [LabelFallback] the full label is
// displayed instead and the fallback is counted.
//
// # Empty Index
//
// An index with no subjects has undefined maxima. Materialize returns
// Result{Empty: true} without calling the renderer.
package materialize
