package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordweb/pkg/errors"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("The cat sat.\nThe dog ran."), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error: %v", err)
	}
	if got != "The cat sat.\nThe dog ran." {
		t.Errorf("ReadText() = %q", got)
	}
}

func TestReadText_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", filepath.Join(dir, "nope.txt"), errors.ErrCodeFileNotFound},
		{"directory", dir, errors.ErrCodeInvalidInput},
		{"control chars", "bad\x00path", errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(tt.path)
			if err == nil {
				t.Fatal("ReadText() expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestReadTextOrEmpty(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	got := ReadTextOrEmpty(filepath.Join(t.TempDir(), "missing.txt"), logger)
	if got != "" {
		t.Errorf("ReadTextOrEmpty() = %q, want empty", got)
	}
	if !strings.Contains(buf.String(), "could not read text") {
		t.Errorf("ReadTextOrEmpty() did not log the failure: %q", buf.String())
	}
}

func TestReadText_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	if err := os.WriteFile(path, []byte("The cat eats fish. Caf\xe9 opens."), 0644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	got := ReadTextOrEmpty(path, log.New(&buf))
	if want := "The cat eats fish. Caf\uFFFD opens."; got != want {
		t.Errorf("ReadTextOrEmpty() = %q, want %q", got, want)
	}
	if !strings.Contains(buf.String(), "not valid UTF-8") {
		t.Errorf("ReadTextOrEmpty() did not warn: %q", buf.String())
	}
	if strings.Contains(buf.String(), "could not read text") {
		t.Errorf("ReadTextOrEmpty() treated invalid bytes as a read failure: %q", buf.String())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"valid", []byte("café"), "café"},
		{"latin1 byte", []byte("caf\xe9"), "caf\uFFFD"},
		{"all invalid", []byte{0xff, 0xfe}, "\uFFFD\uFFFD"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
		})
	}
}
