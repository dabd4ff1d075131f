package openai

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/kaptinlin/jsonrepair"
)

type extractTriple struct {
	Subject  []string `json:"subject" jsonschema_description:"Words of the subject, in sentence order, without articles"`
	Relation []string `json:"relation" jsonschema_description:"Words of the verb phrase linking subject and object, in sentence order"`
	Object   []string `json:"object" jsonschema_description:"Words of the object, in sentence order, without articles"`
}

type extractSentence struct {
	Number  int             `json:"number" jsonschema_description:"Number of the sentence in the numbered input list"`
	Triples []extractTriple `json:"triples" jsonschema_description:"Subject-relation-object facts stated in the sentence"`
}

type extractResponse struct {
	Sentences []extractSentence `json:"sentences" jsonschema_description:"One entry per input sentence, in input order"`
}

// generateSchema reflects a JSON schema suitable for strict structured output.
func generateSchema(value any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return reflector.Reflect(reflect.New(t).Interface())
}

// unmarshalFlexible decodes model output, accepting double-encoded JSON,
// markdown fences and repairable syntax errors.
func unmarshalFlexible(input string, out any) error {
	input = strings.TrimSpace(input)
	if err := json.Unmarshal([]byte(input), out); err == nil {
		return nil
	}

	var asString string
	if err := json.Unmarshal([]byte(input), &asString); err == nil {
		asString = strings.TrimSpace(asString)
		if err := json.Unmarshal([]byte(asString), out); err == nil {
			return nil
		}
		input = asString
	}

	input = stripFence(input)
	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		return fmt.Errorf("json repair failed: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("unmarshal after repair: %w", err)
	}
	return nil
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
