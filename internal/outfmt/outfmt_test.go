package outfmt

import (
	"bytes"
	"context"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		want      Mode
		expectErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"json", JSON, false},
		{"jsonl", JSONL, false},
		{"ndjson", JSONL, false},
		{"yaml", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestModeContext(t *testing.T) {
	ctx := context.Background()
	if ModeFromContext(ctx) != Text {
		t.Error("expected Text default")
	}

	ctx = WithMode(ctx, JSON)
	if !IsJSON(ctx) || IsJSONL(ctx) {
		t.Error("expected JSON mode")
	}

	ctx = WithMode(ctx, JSONL)
	if !IsJSON(ctx) || !IsJSONL(ctx) {
		t.Error("expected JSONL mode")
	}
}

func TestQueryContext(t *testing.T) {
	ctx := context.Background()
	if GetQuery(ctx) != "" {
		t.Error("expected empty default query")
	}
	if got := GetQuery(WithQuery(ctx, ".name")); got != ".name" {
		t.Errorf("expected .name, got %q", got)
	}
}

func TestWriteJSONFiltered(t *testing.T) {
	v := map[string]any{"name": "Japan", "capital": "Tokyo"}

	var buf bytes.Buffer
	if err := WriteJSONFiltered(&buf, v, ".capital", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "\"Tokyo\"\n" {
		t.Errorf("expected filtered value, got %q", got)
	}

	buf.Reset()
	if err := WriteJSONFiltered(&buf, v, "", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != `{"capital":"Tokyo","name":"Japan"}`+"\n" {
		t.Errorf("expected single JSON line, got %q", got)
	}

	if err := WriteJSONFiltered(&buf, v, ".bad[", false); err == nil {
		t.Error("expected error for invalid query")
	}
}
