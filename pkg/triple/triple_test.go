package triple

import (
	"testing"

	"github.com/matzehuels/wordweb/pkg/errors"
)

func TestLabelDisplay(t *testing.T) {
	tests := []struct {
		name    string
		label   Label
		want    string
		wantErr bool
	}{
		{"word index", "cat-1", "cat", false},
		{"first delimiter wins", "ice-cream-4", "ice", false},
		{"metadata empty", "cat-", "cat", false},
		{"spaces kept", "New York-2", "New York", false},
		{"no delimiter", "cat", "", true},
		{"leading delimiter", "-1", "", false},
		{"hyphen token", "--6", "", false},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.label.Display()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Display() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidLabel) {
				t.Errorf("Display() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLabel)
			}
			if got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	if got := Compose("fish", "3"); got != "fish-3" {
		t.Errorf("Compose() = %q, want %q", got, "fish-3")
	}
}

func TestTripleIsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		triple Triple
		want   bool
	}{
		{"complete", New("cat-1", "eats-2", "fish-3"), false},
		{"no subject", Triple{Relation: []Label{"eats-2"}, Object: []Label{"fish-3"}}, true},
		{"no relation", Triple{Subject: []Label{"cat-1"}, Object: []Label{"fish-3"}}, true},
		{"no object", Triple{Subject: []Label{"cat-1"}, Relation: []Label{"eats-2"}}, true},
		{"zero", Triple{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.triple.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTripleValidate(t *testing.T) {
	if err := New("cat-1", "eats-2", "fish-3").Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	bad := Triple{Subject: []Label{"cat-1"}, Relation: []Label{""}, Object: []Label{"fish-3"}}
	if err := bad.Validate(); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("Validate() = %v, want %v", err, errors.ErrCodeInvalidLabel)
	}
}

func TestTripleString(t *testing.T) {
	tr := Triple{
		Subject:  []Label{"big-1", "cat-2"},
		Relation: []Label{"eats-3"},
		Object:   []Label{"fish-4"},
	}
	if got, want := tr.String(), "(big-1 cat-2, eats-3, fish-4)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
