// Package rules implements an offline annotator for simple declarative
// sentences.
//
// Each sentence is scanned for a relation: an optional auxiliary, a verb from
// the lexicon (or a word ending in "ed"), and an optional trailing
// preposition ("sat on"). Content words before the relation form the
// subject. Content words after it form one or more objects, split on "and"
// and commas. Determiners are dropped from both. Sentences without a subject,
// relation and object yield no triples.
package rules

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/triple"
)

// Name is the annotator name used in config and cache keys.
const Name = "rules"

// Options extends the built-in lexicon.
type Options struct {
	// ExtraVerbs are additional lowercase verb forms.
	ExtraVerbs []string
}

// Annotator is the rule-based annotator.
type Annotator struct {
	verbs map[string]struct{}
	extra []string // normalized ExtraVerbs, sorted
}

// New returns a rule-based annotator.
func New(opts Options) *Annotator {
	verbs := make(map[string]struct{}, len(defaultVerbs)+len(opts.ExtraVerbs))
	for _, v := range defaultVerbs {
		verbs[v] = struct{}{}
	}
	var extra []string
	for _, v := range opts.ExtraVerbs {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			verbs[v] = struct{}{}
			extra = append(extra, v)
		}
	}
	slices.Sort(extra)
	return &Annotator{verbs: verbs, extra: slices.Compact(extra)}
}

var _ annotate.Annotator = (*Annotator)(nil)

// Name returns "rules".
func (a *Annotator) Name() string { return Name }

// Fingerprint lists the extra verbs. It is empty for the built-in lexicon.
func (a *Annotator) Fingerprint() string {
	if len(a.extra) == 0 {
		return ""
	}
	return "verbs=" + strings.Join(a.extra, ",")
}

// Annotate extracts triples sentence by sentence.
func (a *Annotator) Annotate(ctx context.Context, text string) ([]annotate.Sentence, error) {
	var out []annotate.Sentence
	for _, s := range annotate.SplitSentences(text) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, annotate.Sentence{Text: s, Triples: a.extract(s)})
	}
	return out, nil
}

func (a *Annotator) extract(sentence string) []triple.Triple {
	tokens := annotate.Tokenize(sentence)
	start, end, ok := a.relation(tokens)
	if !ok {
		return nil
	}

	subject := contentWords(tokens[:start])
	if len(subject) == 0 {
		return nil
	}
	relation := annotate.Labels(tokens[start:end])

	var out []triple.Triple
	for _, obj := range objects(sentence, tokens[end:]) {
		out = append(out, triple.Triple{
			Subject:  annotate.Labels(subject),
			Relation: relation,
			Object:   annotate.Labels(obj),
		})
	}
	return out
}

// relation finds the token span [start, end) of the first relation that has
// at least one content word before it.
func (a *Annotator) relation(tokens []annotate.Token) (int, int, bool) {
	for i := 1; i < len(tokens); i++ {
		w := strings.ToLower(tokens[i].Word)
		if !a.isVerb(w) && !isAuxiliary(w) {
			continue
		}
		if len(contentWords(tokens[:i])) == 0 {
			continue
		}

		end := i + 1
		// auxiliary chains: "was eating", "has been sleeping"
		for end < len(tokens) && (isAuxiliary(strings.ToLower(tokens[end-1].Word)) || isNegation(strings.ToLower(tokens[end-1].Word))) {
			next := strings.ToLower(tokens[end].Word)
			if !a.isVerb(next) && !isAuxiliary(next) && !isNegation(next) && !strings.HasSuffix(next, "ing") {
				break
			}
			end++
		}
		if end < len(tokens) && isPreposition(strings.ToLower(tokens[end].Word)) {
			end++
		}
		return i, end, true
	}
	return 0, 0, false
}

func (a *Annotator) isVerb(w string) bool {
	if _, ok := a.verbs[w]; ok {
		return true
	}
	return len(w) > 4 && strings.HasSuffix(w, "ed")
}

// objects splits the tokens after the relation into object phrases at "and",
// "or" and commas of the original sentence.
func objects(sentence string, tokens []annotate.Token) [][]annotate.Token {
	breaks := commaBreaks(sentence)

	var (
		out [][]annotate.Token
		cur []annotate.Token
	)
	flush := func() {
		if c := contentWords(cur); len(c) > 0 {
			out = append(out, c)
		}
		cur = nil
	}
	for _, t := range tokens {
		w := strings.ToLower(t.Word)
		if w == "and" || w == "or" {
			flush()
			continue
		}
		if breaks[t.Index] {
			flush()
		}
		cur = append(cur, t)
	}
	flush()
	return out
}

// commaBreaks reports, by 1-based token index, which tokens follow a comma.
func commaBreaks(sentence string) map[int]bool {
	out := map[int]bool{}
	for i, part := range strings.Split(sentence, ",") {
		if i == 0 {
			continue
		}
		before := strings.Join(strings.Split(sentence, ",")[:i], ",")
		n := len(annotate.Tokenize(before))
		if len(annotate.Tokenize(part)) > 0 {
			out[n+1] = true
		}
	}
	return out
}

func contentWords(tokens []annotate.Token) []annotate.Token {
	var out []annotate.Token
	for _, t := range tokens {
		if !isDeterminer(strings.ToLower(t.Word)) {
			out = append(out, t)
		}
	}
	return out
}
