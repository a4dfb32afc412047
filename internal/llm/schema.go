package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// FieldType enumerates the value types a schema field may take.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldBool   FieldType = "boolean"
	FieldInt    FieldType = "integer"
)

// Field describes one named output field.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	// Min and Max bound integer fields (inclusive). Ignored for other types.
	Min int
	Max int
}

// Schema describes the structured output expected from the provider.
type Schema struct {
	Fields []Field
}

// PromptLines renders the schema as instruction lines for the model.
func (s *Schema) PromptLines() string {
	var b strings.Builder
	b.WriteString("Antwoord uitsluitend met een JSON-object met exact deze velden:\n")
	for _, f := range s.Fields {
		switch f.Type {
		case FieldBool:
			fmt.Fprintf(&b, "- %q: true of false", f.Name)
		case FieldInt:
			fmt.Fprintf(&b, "- %q: geheel getal van %d t/m %d", f.Name, f.Min, f.Max)
		default:
			fmt.Fprintf(&b, "- %q: tekst", f.Name)
		}
		if f.Description != "" {
			b.WriteString(" (" + f.Description + ")")
		}
		b.WriteString("\n")
	}
	b.WriteString("Laat een veld leeg (\"\") als de bron er niets over zegt.\n")
	return b.String()
}

// Validate checks a raw JSON response against the schema and returns the
// conforming field values. Unknown keys are dropped; missing fields are
// allowed (the reconciler treats them as unfilled). A response that is not a
// JSON object, or carries a wrongly typed value, is an error.
func (s *Schema) Validate(raw json.RawMessage) (map[string]any, error) {
	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}

	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		val, ok := parsed[f.Name]
		if !ok || val == nil {
			continue
		}
		switch f.Type {
		case FieldString:
			str, ok := val.(string)
			if !ok {
				return nil, fmt.Errorf("field %q: expected string, got %T", f.Name, val)
			}
			out[f.Name] = str
		case FieldBool:
			b, ok := val.(bool)
			if !ok {
				return nil, fmt.Errorf("field %q: expected boolean, got %T", f.Name, val)
			}
			out[f.Name] = b
		case FieldInt:
			num, ok := val.(float64)
			if !ok || num != math.Trunc(num) {
				return nil, fmt.Errorf("field %q: expected integer, got %v", f.Name, val)
			}
			n := int(num)
			if f.Max > f.Min && (n < f.Min || n > f.Max) {
				return nil, fmt.Errorf("field %q: %d outside range %d..%d", f.Name, n, f.Min, f.Max)
			}
			out[f.Name] = n
		default:
			return nil, fmt.Errorf("field %q: unknown type %q", f.Name, f.Type)
		}
	}
	return out, nil
}
