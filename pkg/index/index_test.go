package index

import (
	"errors"
	"reflect"
	"testing"

	"github.com/matzehuels/wordweb/pkg/triple"
)

// snapshot flattens an index into ordered "s|p|o" strings.
func snapshot(x *Index) []string {
	var out []string
	for _, s := range x.Subjects() {
		for _, p := range s.Predicates() {
			for _, o := range p.Objects() {
				out = append(out, string(s.Label())+"|"+string(p.Label())+"|"+string(o.Label()))
			}
		}
	}
	return out
}

func TestIngestExample(t *testing.T) {
	idx, err := Build([]triple.Triple{
		triple.New("cat-1", "eats-1", "fish-1"),
		triple.New("cat-1", "eats-1", "mouse-1"),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
	cat, ok := idx.Subject("cat-1")
	if !ok {
		t.Fatal("subject cat-1 missing")
	}
	if cat.NumPredicates() != 1 {
		t.Errorf("NumPredicates() = %d, want 1", cat.NumPredicates())
	}
	if cat.LinkCount() != 3 {
		t.Errorf("LinkCount() = %d, want 3", cat.LinkCount())
	}
	eats, ok := cat.Predicate("eats-1")
	if !ok {
		t.Fatal("predicate eats-1 missing")
	}
	if eats.NumObjects() != 2 {
		t.Errorf("NumObjects() = %d, want 2", eats.NumObjects())
	}
	for _, o := range []triple.Label{"fish-1", "mouse-1"} {
		if _, ok := eats.Object(o); !ok {
			t.Errorf("object %s missing", o)
		}
	}
}

func TestIngestIdempotent(t *testing.T) {
	batch := []triple.Triple{
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("dog-1", "chases-2", "cat-3"),
	}

	once := New()
	if err := once.Ingest(batch); err != nil {
		t.Fatal(err)
	}
	twice := New()
	if err := twice.Ingest(batch); err != nil {
		t.Fatal(err)
	}
	if err := twice.Ingest(batch); err != nil {
		t.Fatal(err)
	}

	if got, want := snapshot(twice), snapshot(once); !reflect.DeepEqual(got, want) {
		t.Errorf("snapshot after double ingest = %v, want %v", got, want)
	}
	if got := twice.Stats().Duplicates; got != 2 {
		t.Errorf("Stats().Duplicates = %d, want 2", got)
	}
	if got := twice.Stats().Objects; got != 2 {
		t.Errorf("Stats().Objects = %d, want 2", got)
	}
}

func TestIngestEmptyRoles(t *testing.T) {
	idx := New()
	err := idx.Ingest([]triple.Triple{
		{},
		{Subject: []triple.Label{"cat-1"}},
		{Subject: []triple.Label{"cat-1"}, Relation: []triple.Label{"eats-2"}},
		{Relation: []triple.Label{"eats-2"}, Object: []triple.Label{"fish-3"}},
	})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if got := idx.Stats().Skipped; got != 4 {
		t.Errorf("Stats().Skipped = %d, want 4", got)
	}
	if got := snapshot(idx); len(got) != 0 {
		t.Errorf("snapshot = %v, want no object entries", got)
	}

	// The subject still gets an entry; it becomes a node without edges.
	if idx.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", idx.Len())
	}
	cat, ok := idx.Subject("cat-1")
	if !ok {
		t.Fatal("subject cat-1 missing")
	}
	if cat.NumPredicates() != 1 || cat.NumObjects() != 0 {
		t.Errorf("cat-1 predicates, objects = %d, %d, want 1, 0", cat.NumPredicates(), cat.NumObjects())
	}
	if cat.LinkCount() != 1 {
		t.Errorf("LinkCount() = %d, want 1", cat.LinkCount())
	}
	if _, ok := idx.Subject("fish-3"); ok {
		t.Error("object of a subjectless triple should not become a subject")
	}
}

func TestIngestCrossProduct(t *testing.T) {
	idx := New()
	err := idx.Ingest([]triple.Triple{{
		Subject:  []triple.Label{"big-1", "cat-2"},
		Relation: []triple.Label{"eats-3"},
		Object:   []triple.Label{"raw-4", "fish-5"},
	}})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"big-1|eats-3|raw-4",
		"big-1|eats-3|fish-5",
		"cat-2|eats-3|raw-4",
		"cat-2|eats-3|fish-5",
	}
	if got := snapshot(idx); !reflect.DeepEqual(got, want) {
		t.Errorf("snapshot = %v, want %v", got, want)
	}
}

func TestIngestPreservesInsertionOrder(t *testing.T) {
	labels := []string{"zebra-1", "apple-1", "mango-1", "banana-1", "kiwi-1"}
	idx := New()
	for _, l := range labels {
		if err := idx.Ingest([]triple.Triple{triple.New(l, "is-2", "fruit-3")}); err != nil {
			t.Fatal(err)
		}
	}

	subjects := idx.Subjects()
	for i, s := range subjects {
		if string(s.Label()) != labels[i] {
			t.Errorf("Subjects()[%d] = %s, want %s", i, s.Label(), labels[i])
		}
	}
}

func TestIngestCaseSensitive(t *testing.T) {
	idx, err := Build([]triple.Triple{
		triple.New("Cat-1", "eats-2", "fish-3"),
		triple.New("cat-1", "eats-2", "fish-3"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
}

func TestLinkCountFormula(t *testing.T) {
	idx, err := Build([]triple.Triple{
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("cat-1", "eats-2", "mouse-3"),
		triple.New("cat-1", "likes-2", "fish-3"),
		triple.New("cat-1", "chases-2", "dog-3"),
	})
	if err != nil {
		t.Fatal(err)
	}
	cat, _ := idx.Subject("cat-1")

	sum := 0
	for _, p := range cat.Predicates() {
		sum += p.NumObjects()
	}
	if got, want := cat.LinkCount(), cat.NumPredicates()+sum; got != want {
		t.Errorf("LinkCount() = %d, want %d", got, want)
	}
	// 3 predicates + (2 + 1 + 1) objects; fish-3 counts once per predicate.
	if cat.LinkCount() != 7 {
		t.Errorf("LinkCount() = %d, want 7", cat.LinkCount())
	}
	if cat.NumObjects() != 4 {
		t.Errorf("NumObjects() = %d, want 4", cat.NumObjects())
	}
}

func TestFrozen(t *testing.T) {
	idx, err := Build(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !idx.Frozen() {
		t.Fatal("Frozen() = false after Build")
	}
	err = idx.Ingest([]triple.Triple{triple.New("cat-1", "eats-2", "fish-3")})
	if !errors.Is(err, ErrFrozen) {
		t.Errorf("Ingest() error = %v, want %v", err, ErrFrozen)
	}
	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
}

func TestLookupMissing(t *testing.T) {
	idx, _ := Build([]triple.Triple{triple.New("cat-1", "eats-2", "fish-3")})
	if _, ok := idx.Subject("dog-1"); ok {
		t.Error("Subject(dog-1) found, want missing")
	}
	cat, _ := idx.Subject("cat-1")
	if _, ok := cat.Predicate("likes-2"); ok {
		t.Error("Predicate(likes-2) found, want missing")
	}
	eats, _ := cat.Predicate("eats-2")
	if _, ok := eats.Object("mouse-3"); ok {
		t.Error("Object(mouse-3) found, want missing")
	}
}
