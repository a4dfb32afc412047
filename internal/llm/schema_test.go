package llm

import (
	"encoding/json"
	"strings"
	"testing"
)

func testSchema() *Schema {
	return &Schema{Fields: []Field{
		{Name: "naam", Type: FieldString},
		{Name: "passend_werk", Type: FieldBool},
		{Name: "uren_per_week", Type: FieldInt, Min: 0, Max: 40},
	}}
}

func TestSchemaValidateConforming(t *testing.T) {
	raw := json.RawMessage(`{"naam":"Jan Jansen","passend_werk":true,"uren_per_week":24,"extra":"dropped"}`)

	fields, err := testSchema().Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if fields["naam"] != "Jan Jansen" {
		t.Fatalf("naam = %v", fields["naam"])
	}
	if fields["passend_werk"] != true {
		t.Fatalf("passend_werk = %v", fields["passend_werk"])
	}
	if fields["uren_per_week"] != 24 {
		t.Fatalf("uren_per_week = %v", fields["uren_per_week"])
	}
	if _, ok := fields["extra"]; ok {
		t.Fatal("unknown key must be dropped")
	}
}

func TestSchemaValidateMissingFieldsAllowed(t *testing.T) {
	fields, err := testSchema().Validate(json.RawMessage(`{"naam":"Jan"}`))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
}

func TestSchemaValidateRejectsWrongTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "string as number", raw: `{"naam":12}`},
		{name: "bool as string", raw: `{"passend_werk":"ja"}`},
		{name: "int as fraction", raw: `{"uren_per_week":24.5}`},
		{name: "int out of range", raw: `{"uren_per_week":99}`},
		{name: "not an object", raw: `["nope"]`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := testSchema().Validate(json.RawMessage(tt.raw)); err == nil {
				t.Fatalf("expected validation error for %s", tt.raw)
			}
		})
	}
}

func TestSchemaPromptLinesNamesEveryField(t *testing.T) {
	lines := testSchema().PromptLines()
	for _, name := range []string{"naam", "passend_werk", "uren_per_week"} {
		if !strings.Contains(lines, name) {
			t.Fatalf("prompt lines missing field %q:\n%s", name, lines)
		}
	}
}
