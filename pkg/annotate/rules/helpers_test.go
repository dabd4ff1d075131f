package rules

import (
	"context"
	"testing"

	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/triple"
)

func mustAnnotate(t *testing.T, a *Annotator, text string) []annotate.Sentence {
	t.Helper()
	s, err := a.Annotate(context.Background(), text)
	if err != nil {
		t.Fatalf("Annotate(%q): %v", text, err)
	}
	return s
}

func labels(ls []triple.Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = string(l)
	}
	return out
}

func checkDisplay(l string) error {
	_, err := triple.Label(l).Display()
	return err
}
