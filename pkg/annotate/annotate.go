package annotate

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/wordweb/pkg/triple"
)

// Sentence is one annotated sentence.
type Sentence struct {
	Text    string          `json:"text"`
	Triples []triple.Triple `json:"triples"`
}

// Annotator extracts triples from text.
type Annotator interface {
	// Name identifies the annotator in logs and cache keys.
	Name() string

	// Annotate returns the sentences of text with their triples, in text order.
	Annotate(ctx context.Context, text string) ([]Sentence, error)
}

// Fingerprinter is implemented by annotators whose output depends on
// settings beyond their name. The fingerprint is folded into the annotation
// cache key, so it must change whenever those settings do.
type Fingerprinter interface {
	Fingerprint() string
}

// Triples flattens the triples of all sentences, preserving order.
func Triples(sentences []Sentence) []triple.Triple {
	var out []triple.Triple
	for _, s := range sentences {
		out = append(out, s.Triples...)
	}
	return out
}

// Token is a word with its 1-based position in the sentence.
type Token struct {
	Word  string
	Index int
}

// Label returns the compound "word-index" label.
func (t Token) Label() triple.Label {
	return triple.Compose(t.Word, strconv.Itoa(t.Index))
}

// SplitSentences splits text on terminal punctuation (. ! ?) and blank lines.
// Whitespace is trimmed and empty sentences are dropped.
func SplitSentences(text string) []string {
	var (
		out []string
		b   strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		b.WriteRune(r)
		switch {
		case r == '.' || r == '!' || r == '?':
			if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
				flush()
			}
		case r == '\n' && i+1 < len(runes) && runes[i+1] == '\n':
			flush()
		}
	}
	flush()
	return out
}

// Tokenize splits a sentence into word tokens. Letters, digits and
// apostrophes form words; everything else separates them. Hyphens split
// words so that a token never contains the label delimiter.
func Tokenize(sentence string) []Token {
	fields := strings.FieldsFunc(sentence, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if f == "" {
			continue
		}
		tokens = append(tokens, Token{Word: f, Index: len(tokens) + 1})
	}
	return tokens
}

// Labels converts tokens to labels.
func Labels(tokens []Token) []triple.Label {
	out := make([]triple.Label, len(tokens))
	for i, t := range tokens {
		out[i] = t.Label()
	}
	return out
}
