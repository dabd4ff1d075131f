// Package tsv reads pre-extracted triples.
//
// The input holds one triple per line as three tab-separated fields
// (subject, relation, object). Each field is a space-separated list of
// labels. Blank lines and lines starting with '#' are skipped. A field may be
// empty, which produces a triple with an empty role.
//
//	# subject	relation	object
//	cat-1	eats-2	fish-3
//	old-1 man-2	sat-3 on-4	bench-6
package tsv

import (
	"bufio"
	"context"
	"strings"

	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/triple"
)

// Name is the annotator name used in config and cache keys.
const Name = "tsv"

// Annotator parses tab-separated triples. Each line becomes one sentence.
type Annotator struct{}

// New returns a TSV annotator.
func New() *Annotator { return &Annotator{} }

var _ annotate.Annotator = (*Annotator)(nil)

// Name returns "tsv".
func (*Annotator) Name() string { return Name }

// Annotate parses text. Malformed lines fail with an INVALID_INPUT error
// naming the line number.
func (*Annotator) Annotate(ctx context.Context, text string) ([]annotate.Sentence, error) {
	var out []annotate.Sentence
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		t, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", n)
		}
		out = append(out, annotate.Sentence{Text: line, Triples: []triple.Triple{t}})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "scan triples")
	}
	return out, nil
}

// ParseLine parses one tab-separated triple.
func ParseLine(line string) (triple.Triple, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return triple.Triple{}, errors.New(errors.ErrCodeInvalidInput, "want 3 tab-separated fields, got %d", len(fields))
	}
	t := triple.Triple{
		Subject:  parseField(fields[0]),
		Relation: parseField(fields[1]),
		Object:   parseField(fields[2]),
	}
	if err := t.Validate(); err != nil {
		return triple.Triple{}, err
	}
	return t, nil
}

func parseField(f string) []triple.Label {
	words := strings.Fields(f)
	if len(words) == 0 {
		return nil
	}
	out := make([]triple.Label, len(words))
	for i, w := range words {
		out[i] = triple.Label(w)
	}
	return out
}

// Format renders triples in the format Annotate reads.
func Format(triples []triple.Triple) string {
	var b strings.Builder
	for _, t := range triples {
		b.WriteString(joinField(t.Subject))
		b.WriteByte('\t')
		b.WriteString(joinField(t.Relation))
		b.WriteByte('\t')
		b.WriteString(joinField(t.Object))
		b.WriteByte('\n')
	}
	return b.String()
}

func joinField(ls []triple.Label) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = string(l)
	}
	return strings.Join(parts, " ")
}
