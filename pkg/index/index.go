package index

import (
	"errors"

	"github.com/matzehuels/wordweb/pkg/triple"
)

// ErrFrozen is returned by [Index.Ingest] after [Index.Freeze] has been called.
var ErrFrozen = errors.New("index is frozen")

// Stats summarizes what ingestion did to an index.
type Stats struct {
	Subjects   int // distinct subject entries
	Predicates int // predicate entries summed over subjects
	Objects    int // object entries summed over predicates
	Triples    int // triples passed to Ingest
	Skipped    int // triples with an empty role
	Duplicates int // subject/predicate/object combinations seen before
}

// Index is the Subject → Predicate → Object aggregation of a batch of triples.
//
// The zero value is not usable - use [New] or [Build].
type Index struct {
	subjects map[triple.Label]*SubjectEntry
	order    []triple.Label
	frozen   bool
	stats    Stats
}

// New creates an empty, mutable index.
func New() *Index {
	return &Index{subjects: make(map[triple.Label]*SubjectEntry)}
}

// Build ingests triples into a new index and freezes it.
func Build(triples []triple.Triple) (*Index, error) {
	idx := New()
	if err := idx.Ingest(triples); err != nil {
		return nil, err
	}
	idx.Freeze()
	return idx, nil
}

// Ingest adds every subject/predicate/object combination of each triple.
// Re-ingesting a combination that is already present is a no-op.
// Labels are used verbatim as keys.
func (x *Index) Ingest(triples []triple.Triple) error {
	if x.frozen {
		return ErrFrozen
	}
	for _, t := range triples {
		x.stats.Triples++
		if t.IsEmpty() {
			x.stats.Skipped++
		}
		for _, sl := range t.Subject {
			s, created := x.getOrInsert(sl)
			if created {
				x.stats.Subjects++
			}
			for _, pl := range t.Relation {
				p, created := s.getOrInsert(pl)
				if created {
					x.stats.Predicates++
				}
				for _, ol := range t.Object {
					if _, created := p.getOrInsert(ol); created {
						x.stats.Objects++
					} else {
						x.stats.Duplicates++
					}
				}
			}
		}
	}
	return nil
}

func (x *Index) getOrInsert(label triple.Label) (*SubjectEntry, bool) {
	if s, ok := x.subjects[label]; ok {
		return s, false
	}
	s := newSubject(label)
	x.subjects[label] = s
	x.order = append(x.order, label)
	return s, true
}

// Freeze marks the index read-only.
func (x *Index) Freeze() { x.frozen = true }

// Frozen reports whether [Index.Freeze] has been called.
func (x *Index) Frozen() bool { return x.frozen }

// Len returns the number of subjects.
func (x *Index) Len() int { return len(x.order) }

// Subject returns the subject entry for label, if present.
func (x *Index) Subject(label triple.Label) (*SubjectEntry, bool) {
	s, ok := x.subjects[label]
	return s, ok
}

// Subjects returns the subject entries in first-insertion order.
func (x *Index) Subjects() []*SubjectEntry {
	out := make([]*SubjectEntry, len(x.order))
	for i, l := range x.order {
		out[i] = x.subjects[l]
	}
	return out
}

// Stats returns ingestion counters.
func (x *Index) Stats() Stats { return x.stats }
