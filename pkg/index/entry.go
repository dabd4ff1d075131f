package index

import "github.com/matzehuels/wordweb/pkg/triple"

// ObjectEntry is an object label under a predicate.
type ObjectEntry struct {
	label triple.Label
}

// Label returns the object's compound label.
func (o *ObjectEntry) Label() triple.Label { return o.label }

// PredicateEntry is a predicate label under a subject, owning its objects.
type PredicateEntry struct {
	label   triple.Label
	objects map[triple.Label]*ObjectEntry
	order   []triple.Label
}

func newPredicate(label triple.Label) *PredicateEntry {
	return &PredicateEntry{label: label, objects: make(map[triple.Label]*ObjectEntry)}
}

// Label returns the predicate's compound label.
func (p *PredicateEntry) Label() triple.Label { return p.label }

// NumObjects returns the number of distinct objects under the predicate.
func (p *PredicateEntry) NumObjects() int { return len(p.order) }

// Object returns the object entry for label, if present.
func (p *PredicateEntry) Object(label triple.Label) (*ObjectEntry, bool) {
	o, ok := p.objects[label]
	return o, ok
}

// Objects returns the object entries in first-insertion order.
func (p *PredicateEntry) Objects() []*ObjectEntry {
	out := make([]*ObjectEntry, len(p.order))
	for i, l := range p.order {
		out[i] = p.objects[l]
	}
	return out
}

// getOrInsert returns the object entry for label, creating it if needed.
func (p *PredicateEntry) getOrInsert(label triple.Label) (*ObjectEntry, bool) {
	if o, ok := p.objects[label]; ok {
		return o, false
	}
	o := &ObjectEntry{label: label}
	p.objects[label] = o
	p.order = append(p.order, label)
	return o, true
}

// SubjectEntry is a subject label, owning its predicates.
type SubjectEntry struct {
	label      triple.Label
	predicates map[triple.Label]*PredicateEntry
	order      []triple.Label
}

func newSubject(label triple.Label) *SubjectEntry {
	return &SubjectEntry{label: label, predicates: make(map[triple.Label]*PredicateEntry)}
}

// Label returns the subject's compound label.
func (s *SubjectEntry) Label() triple.Label { return s.label }

// NumPredicates returns the number of distinct predicates of the subject.
func (s *SubjectEntry) NumPredicates() int { return len(s.order) }

// NumObjects returns the sum of distinct objects over all predicates.
// An object reached through two predicates is counted twice.
func (s *SubjectEntry) NumObjects() int {
	n := 0
	for _, l := range s.order {
		n += s.predicates[l].NumObjects()
	}
	return n
}

// LinkCount returns NumPredicates + NumObjects.
func (s *SubjectEntry) LinkCount() int {
	return s.NumPredicates() + s.NumObjects()
}

// Predicate returns the predicate entry for label, if present.
func (s *SubjectEntry) Predicate(label triple.Label) (*PredicateEntry, bool) {
	p, ok := s.predicates[label]
	return p, ok
}

// Predicates returns the predicate entries in first-insertion order.
func (s *SubjectEntry) Predicates() []*PredicateEntry {
	out := make([]*PredicateEntry, len(s.order))
	for i, l := range s.order {
		out[i] = s.predicates[l]
	}
	return out
}

func (s *SubjectEntry) getOrInsert(label triple.Label) (*PredicateEntry, bool) {
	if p, ok := s.predicates[label]; ok {
		return p, false
	}
	p := newPredicate(label)
	s.predicates[label] = p
	s.order = append(s.order, label)
	return p, true
}
