// Package triple defines the subject–predicate–object facts that wordweb
// aggregates into a relationship graph.
//
// # Labels
//
// Every role of a [Triple] is an ordered sequence of compound [Label] values.
// A compound label has the form "token-metadata", for example "cat-1" where
// the metadata is the token's position in its sentence. The full string is
// the identity key used for deduplication; the part before the first
// [Delimiter] is the human-readable display form:
//
//	l := triple.Label("cat-1")
//	name, err := l.Display() // "cat", nil
//
// A label without a delimiter is still a valid key, but has no display form.
// [Label.Display] reports this as an [errors.ErrCodeInvalidLabel] error
// instead of guessing.
//
// # Triples
//
// A [Triple] with an empty role contributes nothing when ingested; it is not
// an error. Use [New] to build a single-label triple and [Triple.IsEmpty] to
// detect triples that will be skipped.
package triple
