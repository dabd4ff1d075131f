package triple

import (
	"strings"

	"github.com/matzehuels/wordweb/pkg/errors"
)

// Delimiter separates the display token from the metadata in a compound label.
const Delimiter = '-'

// Label is a compound label string of the form "token-metadata".
// The full string is the identity key.
type Label string

// String returns the full compound label.
func (l Label) String() string { return string(l) }

// Display returns the portion of the label preceding the first [Delimiter].
// A leading delimiter, as in the hyphen token "--6", yields an empty display
// form. It returns an [errors.ErrCodeInvalidLabel] error only when the label
// has no delimiter.
func (l Label) Display() (string, error) {
	i := strings.IndexRune(string(l), Delimiter)
	if i < 0 {
		return "", errors.New(errors.ErrCodeInvalidLabel, "label %q has no %q delimiter", string(l), Delimiter)
	}
	return string(l)[:i], nil
}

// Compose builds a compound label from a display token and its metadata.
func Compose(token, meta string) Label {
	return Label(token + string(Delimiter) + meta)
}

// Triple is one subject–predicate–object fact extracted from a sentence.
// Each role is an ordered sequence of labels.
type Triple struct {
	Subject  []Label `json:"subject"`
	Relation []Label `json:"relation"`
	Object   []Label `json:"object"`
}

// New returns a triple with exactly one label per role.
func New(subject, relation, object string) Triple {
	return Triple{
		Subject:  []Label{Label(subject)},
		Relation: []Label{Label(relation)},
		Object:   []Label{Label(object)},
	}
}

// IsEmpty reports whether any role is empty, in which case ingestion
// produces no object entries for the triple.
func (t Triple) IsEmpty() bool {
	return len(t.Subject) == 0 || len(t.Relation) == 0 || len(t.Object) == 0
}

// Validate checks every label of the triple with [errors.ValidateLabel].
func (t Triple) Validate() error {
	for _, role := range [][]Label{t.Subject, t.Relation, t.Object} {
		for _, l := range role {
			if err := errors.ValidateLabel(string(l)); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders the triple as "(s, r, o)" with space-joined labels.
func (t Triple) String() string {
	return "(" + join(t.Subject) + ", " + join(t.Relation) + ", " + join(t.Object) + ")"
}

func join(ls []Label) string {
	parts := make([]string, len(ls))
	for i, l := range ls {
		parts[i] = string(l)
	}
	return strings.Join(parts, " ")
}
