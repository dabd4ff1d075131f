package materialize

import (
	"context"
	"errors"
	"io"
	"strconv"
	"testing"

	"github.com/charmbracelet/log"

	wwerrors "github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/graph"
	"github.com/matzehuels/wordweb/pkg/index"
	"github.com/matzehuels/wordweb/pkg/triple"
)

var quiet = log.New(io.Discard)

func build(t *testing.T, triples ...triple.Triple) *index.Index {
	t.Helper()
	idx, err := index.Build(triples)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return idx
}

func run(t *testing.T, idx *index.Index, r Renderer, opts Options) Result {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = quiet
	}
	res, err := Materialize(context.Background(), idx, r, opts)
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	return res
}

func TestMaterializeExample(t *testing.T) {
	idx := build(t,
		triple.New("cat-1", "eats-1", "fish-1"),
		triple.New("cat-1", "eats-1", "mouse-1"),
	)
	g := graph.New("Word Web", graph.DefaultOptions())
	res := run(t, idx, g, Options{})

	if g.NodeCount() != 3 || res.Nodes != 3 {
		t.Errorf("nodes = %d (result %d), want 3", g.NodeCount(), res.Nodes)
	}
	if g.EdgeCount() != 2 || res.Edges != 2 {
		t.Errorf("edges = %d (result %d), want 2", g.EdgeCount(), res.Edges)
	}

	cat, ok := g.Node("cat-1")
	if !ok {
		t.Fatal("node cat-1 missing")
	}
	if cat.Label() != "cat" {
		t.Errorf("subject label = %q, want cat", cat.Label())
	}
	if cat.Style() != "fill-color: rgb(255,0,0);" {
		t.Errorf("subject style = %q", cat.Style())
	}
	fish, _ := g.Node("fish-1")
	if fish.Label() != "fish" {
		t.Errorf("object label = %q, want fish", fish.Label())
	}
	if fish.Style() != "" {
		t.Errorf("object style = %q, want unset", fish.Style())
	}

	for i, e := range g.Edges() {
		if e.ID != strconv.Itoa(i+1) {
			t.Errorf("edge %d ID = %s, want %d", i, e.ID, i+1)
		}
		if e.Label() != "eats" {
			t.Errorf("edge %s label = %q, want eats", e.ID, e.Label())
		}
		if e.Style() != "fill-color: rgb(255,0,255);" {
			t.Errorf("edge %s style = %q", e.ID, e.Style())
		}
		if e.From != "cat-1" {
			t.Errorf("edge %s from = %s, want cat-1", e.ID, e.From)
		}
	}
	if res.LastEdgeID != 2 {
		t.Errorf("LastEdgeID = %d, want 2", res.LastEdgeID)
	}
	if res.Maxima.LinkCount != 3 || res.Maxima.PredicateCount != 1 {
		t.Errorf("Maxima = %+v, want {3 1}", res.Maxima)
	}
}

func TestMaterializeIntensities(t *testing.T) {
	idx := build(t,
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("dog-1", "chases-2", "cat-3"),
		triple.New("dog-1", "likes-2", "bone-3"),
	)
	g := graph.New("", graph.DefaultOptions())
	run(t, idx, g, Options{})

	// cat: links 2, preds 1; dog: links 4, preds 2
	cat, _ := g.Node("cat-1")
	if got, want := cat.Style(), "fill-color: rgb(128,0,0);"; got != want {
		t.Errorf("cat style = %q, want %q", got, want)
	}
	edges := g.OutEdges("cat-1")
	if got, want := edges[0].Style(), "fill-color: rgb(128,0,128);"; got != want {
		t.Errorf("cat edge style = %q, want %q", got, want)
	}
	for _, e := range g.OutEdges("dog-1") {
		if got, want := e.Style(), "fill-color: rgb(255,0,255);"; got != want {
			t.Errorf("dog edge style = %q, want %q", got, want)
		}
	}
}

func TestMaterializeSharedObjectAcrossSubjects(t *testing.T) {
	idx := build(t,
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("bear-1", "eats-2", "fish-3"),
		triple.New("fish-3", "swims-4", "river-5"),
	)
	g := graph.New("", graph.DefaultOptions())
	res := run(t, idx, g, Options{})

	if g.NodeCount() != 4 || res.Nodes != 4 {
		t.Errorf("nodes = %d (result %d), want 4", g.NodeCount(), res.Nodes)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("edges = %d, want 3", g.EdgeCount())
	}
	// fish-3 is both an object and a subject; as a subject it gets a style.
	fish, _ := g.Node("fish-3")
	if fish.Style() == "" {
		t.Error("fish-3 style unset, want subject fill")
	}
	if fish.Label() != "fish" {
		t.Errorf("fish-3 label = %q", fish.Label())
	}
}

func TestMaterializeEmpty(t *testing.T) {
	r := &recorder{Graph: graph.New("", graph.DefaultOptions())}
	res := run(t, build(t), r, Options{})
	if !res.Empty {
		t.Error("Empty = false, want true")
	}
	if r.calls != 0 {
		t.Errorf("renderer calls = %d, want 0", r.calls)
	}
}

func TestMaterializeDeterministic(t *testing.T) {
	idx := build(t,
		triple.New("zebra-1", "eats-2", "grass-3"),
		triple.New("lion-1", "eats-2", "zebra-3"),
		triple.New("lion-1", "sleeps-2", "day-3"),
		triple.New("ant-1", "carries-2", "leaf-3"),
		triple.New("ant-1", "carries-2", "crumb-3"),
	)

	first := graph.New("", graph.DefaultOptions())
	run(t, idx, first, Options{})
	for i := 0; i < 10; i++ {
		again := graph.New("", graph.DefaultOptions())
		run(t, idx, again, Options{})
		if !again.Equal(first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestMaterializeStrictLabel(t *testing.T) {
	idx := build(t,
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("dog", "chases-2", "cat-3"),
	)
	g := graph.New("", graph.DefaultOptions())
	res, err := Materialize(context.Background(), idx, g, Options{Logger: quiet})
	if !wwerrors.Is(err, wwerrors.ErrCodeInvalidLabel) {
		t.Fatalf("Materialize() error = %v, want %v", err, wwerrors.ErrCodeInvalidLabel)
	}
	if g.HasNode("dog") {
		t.Error("node with invalid label left in graph")
	}
	if res.Edges != 1 {
		t.Errorf("Edges = %d, want 1 committed before the error", res.Edges)
	}
}

func TestMaterializeHyphenToken(t *testing.T) {
	idx := build(t,
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("dash-4", "is-5", "--6"),
	)
	g := graph.New("", graph.DefaultOptions())
	res := run(t, idx, g, Options{})

	if res.Nodes != 4 || res.Edges != 2 {
		t.Errorf("Nodes, Edges = %d, %d, want 4, 2", res.Nodes, res.Edges)
	}
	n, ok := g.Node("--6")
	if !ok {
		t.Fatal("hyphen token node missing")
	}
	if n.Label() != "" {
		t.Errorf("Label() = %q, want empty display form", n.Label())
	}
}

func TestMaterializeFallbackLabel(t *testing.T) {
	idx := build(t,
		triple.New("dog", "chases", "cat-3"),
		triple.New("dog", "chases", "mouse-3"),
	)
	g := graph.New("", graph.DefaultOptions())
	res := run(t, idx, g, Options{LabelPolicy: LabelFallback})

	if res.LabelFallbacks != 2 {
		t.Errorf("LabelFallbacks = %d, want 2", res.LabelFallbacks)
	}
	dog, _ := g.Node("dog")
	if dog.Label() != "dog" {
		t.Errorf("label = %q, want dog", dog.Label())
	}
	for _, e := range g.Edges() {
		if e.Label() != "chases" {
			t.Errorf("edge label = %q, want chases", e.Label())
		}
	}
}

func TestMaterializeRollback(t *testing.T) {
	idx := build(t,
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("cat-1", "eats-2", "mouse-3"),
		triple.New("cat-1", "eats-2", "bird-3"),
		triple.New("dog-1", "chases-2", "fish-3"),
	)
	// Reject the second and fourth edge.
	r := &rejecting{Graph: graph.New("", graph.DefaultOptions()), reject: map[string]bool{"2": true, "4": true}}
	res := run(t, idx, r, Options{})

	if res.RolledBack != 2 {
		t.Errorf("RolledBack = %d, want 2", res.RolledBack)
	}
	if res.Edges != 2 {
		t.Errorf("Edges = %d, want 2", res.Edges)
	}
	if r.HasNode("mouse-3") {
		t.Error("mouse-3 kept after its only edge was rejected")
	}
	// fish-3 existed before edge 4 was rejected and still backs edge 1.
	if !r.HasNode("fish-3") {
		t.Error("fish-3 removed although committed edge 1 points to it")
	}
	if !r.HasNode("dog-1") {
		t.Error("subject dog-1 removed on rollback")
	}
	if _, ok := r.Edge("3"); !ok {
		t.Error("edge 3 missing; IDs must keep increasing after a rollback")
	}
	if res.LastEdgeID != 4 {
		t.Errorf("LastEdgeID = %d, want 4", res.LastEdgeID)
	}
	if res.Nodes != r.NodeCount() {
		t.Errorf("Nodes = %d, graph has %d", res.Nodes, r.NodeCount())
	}
}

func TestMaterializeRollbackOnPrepopulatedRenderer(t *testing.T) {
	g := graph.New("", graph.DefaultOptions())
	_ = g.AddEdge("1", "old-1", "older-1")

	idx := build(t,
		triple.New("cat-1", "eats-2", "fish-3"),
		triple.New("cat-1", "eats-2", "mouse-3"),
	)
	res := run(t, idx, g, Options{})

	if res.RolledBack != 1 {
		t.Errorf("RolledBack = %d, want 1", res.RolledBack)
	}
	e, ok := g.Edge("1")
	if !ok || e.From != "old-1" {
		t.Errorf("pre-existing edge 1 = %+v, want kept", e)
	}
	if g.HasNode("fish-3") {
		t.Error("fish-3 kept after its edge was rejected")
	}
	if _, ok := g.Edge("2"); !ok {
		t.Error("edge 2 missing")
	}
}

func TestMaterializeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	idx := build(t, triple.New("cat-1", "eats-2", "fish-3"))
	_, err := Materialize(ctx, idx, graph.New("", graph.DefaultOptions()), Options{Logger: quiet})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Materialize() error = %v, want %v", err, context.Canceled)
	}
}

func TestEdgeIDs(t *testing.T) {
	var ids EdgeIDs
	if ids.Last() != 0 {
		t.Errorf("Last() = %d, want 0", ids.Last())
	}
	prev := 0
	for i := 0; i < 100; i++ {
		n := ids.Next()
		if n <= prev {
			t.Fatalf("Next() = %d after %d", n, prev)
		}
		prev = n
	}
}

func TestParseLabelPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    LabelPolicy
		wantErr bool
	}{
		{"", LabelStrict, false},
		{"strict", LabelStrict, false},
		{"fallback", LabelFallback, false},
		{"loose", LabelStrict, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLabelPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLabelPolicy(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLabelPolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// recorder counts renderer calls.
type recorder struct {
	*graph.Graph
	calls int
}

func (r *recorder) AddNode(id string) error {
	r.calls++
	return r.Graph.AddNode(id)
}

func (r *recorder) AddEdge(id, from, to string) error {
	r.calls++
	return r.Graph.AddEdge(id, from, to)
}

// rejecting fails AddEdge for selected IDs.
type rejecting struct {
	*graph.Graph
	reject map[string]bool
}

func (r *rejecting) AddEdge(id, from, to string) error {
	if r.reject[id] {
		return errors.New("rejected")
	}
	return r.Graph.AddEdge(id, from, to)
}
