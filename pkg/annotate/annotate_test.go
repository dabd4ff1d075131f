package annotate

import (
	"reflect"
	"testing"

	"github.com/matzehuels/wordweb/pkg/triple"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace", "  \n\t", nil},
		{"single", "The cat sat.", []string{"The cat sat."}},
		{"multiple", "The cat sat. The dog ran! Who won?", []string{"The cat sat.", "The dog ran!", "Who won?"}},
		{"no terminal", "The cat sat", []string{"The cat sat"}},
		{"decimal", "Pi is 3.14 today.", []string{"Pi is 3.14 today."}},
		{"paragraphs", "First line\n\nSecond line", []string{"First line", "Second line"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSentences(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("The well-known cat's toy, finally.")
	want := []Token{
		{"The", 1}, {"well", 2}, {"known", 3}, {"cat's", 4}, {"toy", 5}, {"finally", 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize() = %v, want %v", got, want)
	}
}

func TestTokenLabel(t *testing.T) {
	l := Token{Word: "cat", Index: 2}.Label()
	if l != "cat-2" {
		t.Errorf("Label() = %q, want cat-2", l)
	}
	if d, err := l.Display(); err != nil || d != "cat" {
		t.Errorf("Display() = %q, %v", d, err)
	}
}

func TestTriples(t *testing.T) {
	a := triple.New("cat-1", "eats-2", "fish-3")
	b := triple.New("dog-1", "runs-2", "home-3")
	got := Triples([]Sentence{{Triples: []triple.Triple{a}}, {}, {Triples: []triple.Triple{b}}})
	if len(got) != 2 || got[0].String() != a.String() || got[1].String() != b.String() {
		t.Errorf("Triples() = %v", got)
	}
}
