// Package index aggregates triples into a three-level deduplicated index.
//
// # Overview
//
// An [Index] maps subject labels to [SubjectEntry] values, each subject maps
// predicate labels to [PredicateEntry] values, and each predicate maps object
// labels to [ObjectEntry] values. Ownership is strictly hierarchical: a
// subject owns its predicates and a predicate owns its objects. Entries hold
// no reference to their parent.
//
// # Ingestion
//
// [Index.Ingest] is the only mutator. For every combination of subject,
// relation and object label in a triple it gets or creates the entry at each
// level, so ingesting an identical triple twice leaves the index unchanged.
// Triples with an empty role contribute nothing.
//
//	idx := index.New()
//	idx.Ingest([]triple.Triple{
//	    triple.New("cat-1", "eats-1", "fish-1"),
//	    triple.New("cat-1", "eats-1", "mouse-1"),
//	})
//	idx.Freeze()
//
// Once [Index.Freeze] is called the index is read-only and further calls to
// Ingest return [ErrFrozen]. [Build] ingests and freezes in one step.
//
// # Ordering
//
// Every level remembers the order in which its keys were first inserted and
// all accessors iterate in that order. Materializing the same index twice
// therefore produces the same graph.
//
// # Link Count
//
// [SubjectEntry.LinkCount] is the number of predicates plus the total number
// of distinct objects across those predicates. The predicate term counts
// relation labels as links in their own right, so it is not the number of
// distinct neighbors of the subject.
//
// # Concurrency
//
// An Index is not safe for concurrent mutation. A frozen index may be read
// from multiple goroutines.
package index
