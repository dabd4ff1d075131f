package rules

import (
	"context"
	"testing"

	"github.com/matzehuels/wordweb/pkg/annotate"
)

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "preposition joins relation",
			text: "The cat sat on the mat.",
			want: []string{"(cat-2, sat-3 on-4, mat-6)"},
		},
		{
			name: "auxiliary chain and conjunction",
			text: "The dog was eating bones and biscuits.",
			want: []string{
				"(dog-2, was-3 eating-4, bones-5)",
				"(dog-2, was-3 eating-4, biscuits-7)",
			},
		},
		{
			name: "comma list",
			text: "Alice likes Bob, Carol and Dave.",
			want: []string{
				"(Alice-1, likes-2, Bob-3)",
				"(Alice-1, likes-2, Carol-4)",
				"(Alice-1, likes-2, Dave-6)",
			},
		},
		{
			name: "ed suffix verb",
			text: "Marie discovered radium.",
			want: []string{"(Marie-1, discovered-2, radium-3)"},
		},
		{
			name: "multi-word subject",
			text: "The old fisherman caught a fish.",
			want: []string{"(old-2 fisherman-3, caught-4, fish-6)"},
		},
		{name: "no verb", text: "Hello world.", want: nil},
		{name: "no subject", text: "The is here.", want: nil},
		{name: "no object", text: "The cat sat.", want: nil},
	}

	a := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences, err := a.Annotate(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("Annotate() error: %v", err)
			}
			got := annotate.Triples(sentences)
			if len(got) != len(tt.want) {
				t.Fatalf("Annotate() = %v, want %v", got, tt.want)
			}
			for i, tr := range got {
				if tr.String() != tt.want[i] {
					t.Errorf("triple %d = %s, want %s", i, tr, tt.want[i])
				}
			}
		})
	}
}

func TestAnnotate_KeepsEmptySentences(t *testing.T) {
	sentences, err := New(Options{}).Annotate(context.Background(), "Hello there. The cat ate fish.")
	if err != nil {
		t.Fatal(err)
	}
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sentences))
	}
	if len(sentences[0].Triples) != 0 || len(sentences[1].Triples) != 1 {
		t.Errorf("triples per sentence = %d, %d; want 0, 1", len(sentences[0].Triples), len(sentences[1].Triples))
	}
}

func TestAnnotate_ExtraVerbs(t *testing.T) {
	text := "Bees pollinate flowers."
	if got := annotate.Triples(mustAnnotate(t, New(Options{}), text)); len(got) != 0 {
		t.Fatalf("default lexicon should not know pollinate: %v", got)
	}
	got := annotate.Triples(mustAnnotate(t, New(Options{ExtraVerbs: []string{" Pollinate "}}), text))
	if len(got) != 1 || got[0].String() != "(Bees-1, pollinate-2, flowers-3)" {
		t.Errorf("Annotate() with extra verb = %v", got)
	}
}

func TestFingerprint(t *testing.T) {
	if got := New(Options{}).Fingerprint(); got != "" {
		t.Errorf("Fingerprint() default = %q, want empty", got)
	}
	a := New(Options{ExtraVerbs: []string{"Pollinate", "devours", " pollinate"}})
	b := New(Options{ExtraVerbs: []string{"devours", "pollinate"}})
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("Fingerprint() differs for the same verbs: %q vs %q", a.Fingerprint(), b.Fingerprint())
	}
	if got, want := a.Fingerprint(), "verbs=devours,pollinate"; got != want {
		t.Errorf("Fingerprint() = %q, want %q", got, want)
	}
}

func TestAnnotate_LabelsHaveDisplayForm(t *testing.T) {
	text := "The well-known author wrote three novels. Grace Hopper built compilers."
	for _, tr := range annotate.Triples(mustAnnotate(t, New(Options{}), text)) {
		for _, role := range [][]string{labels(tr.Subject), labels(tr.Relation), labels(tr.Object)} {
			for _, l := range role {
				if err := checkDisplay(l); err != nil {
					t.Errorf("label %q: %v", l, err)
				}
			}
		}
	}
}

func TestAnnotate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New(Options{}).Annotate(ctx, "The cat ate fish."); err != context.Canceled {
		t.Errorf("Annotate() error = %v, want context.Canceled", err)
	}
}

func TestName(t *testing.T) {
	if New(Options{}).Name() != "rules" {
		t.Error("Name() should be rules")
	}
}
