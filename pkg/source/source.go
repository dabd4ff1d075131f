// Package source reads the raw text that feeds the annotation stage.
//
// The whole file is read in one call. [ReadTextOrEmpty] treats a read failure
// as non-fatal: it logs the error and returns empty text, which flows through
// the pipeline as an empty index and an empty graph. Bytes that are not valid
// UTF-8 are decoded as U+FFFD rather than rejected.
package source

import (
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/unicode"

	"github.com/matzehuels/wordweb/pkg/errors"
)

// DefaultPath is the text file read when no path is configured.
const DefaultPath = "Textfile.txt"

// ReadText reads the file at path. An empty path selects [DefaultPath].
func ReadText(path string) (string, error) {
	text, _, err := readText(path)
	return text, err
}

// ReadTextOrEmpty reads the file at path, logging and swallowing any error.
// A nil logger uses log.Default().
func ReadTextOrEmpty(path string, logger *log.Logger) string {
	if logger == nil {
		logger = log.Default()
	}
	text, replaced, err := readText(path)
	if err != nil {
		logger.Error("could not read text, continuing with empty input", "path", path, "err", err)
		return ""
	}
	if replaced {
		logger.Warn("text is not valid UTF-8, invalid bytes replaced", "path", path)
	}
	return text
}

func readText(path string) (text string, replaced bool, err error) {
	if path == "" {
		path = DefaultPath
	}
	if err := errors.ValidatePath(path); err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, errors.Wrap(errors.ErrCodeFileNotFound, err, "text file not found: %s", path)
	}
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read text file: %s", path)
	}
	text, err = Decode(data)
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode text file: %s", path)
	}
	return text, !utf8.Valid(data), nil
}

// Decode converts raw file bytes to text. Invalid UTF-8 sequences become
// U+FFFD so a stray byte never discards the rest of the text.
func Decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
