package popcat

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildRequestOrdersByDeclaration(t *testing.T) {
	ep, ok := Lookup("drake")
	if !ok {
		t.Fatal("drake endpoint not found")
	}

	// Caller argument order must not matter: keys follow the catalog.
	desc, err := buildRequest(ep, map[string]string{"text2": "B", "text1": "A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Param{{Key: "text1", Value: "A"}, {Key: "text2", Value: "B"}}
	if !reflect.DeepEqual(desc.Params, want) {
		t.Errorf("expected params %v, got %v", want, desc.Params)
	}
	if got := desc.Query(); got != "text1=A&text2=B" {
		t.Errorf("expected query %q, got %q", "text1=A&text2=B", got)
	}
}

func TestBuildRequestIdempotent(t *testing.T) {
	ep, _ := Lookup("drake")
	args := map[string]string{"text1": "A", "text2": "B"}

	first, err := buildRequest(ep, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := buildRequest(ep, args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different descriptors: %+v vs %+v", first, second)
	}
}

func TestBuildRequestRejectsUnknownParam(t *testing.T) {
	ep, _ := Lookup("drake")
	_, err := buildRequest(ep, map[string]string{"text1": "A", "text2": "B", "bogus": "x"})
	if err == nil {
		t.Fatal("expected error for unknown parameter")
	}
	if !IsValidation(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestBuildRequestMissingRequired(t *testing.T) {
	ep, _ := Lookup("drake")
	desc, err := buildRequest(ep, map[string]string{"text1": "A"})
	if err == nil {
		t.Fatal("expected error for missing required parameter")
	}
	if desc != nil {
		t.Error("no descriptor may exist for a partially-validated request")
	}
}

func TestBuildRequestOmitsAbsentOptional(t *testing.T) {
	ep, _ := Lookup("gun")
	desc, err := buildRequest(ep, map[string]string{"image": "https://x.com/a.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(desc.Params) != 1 || desc.Params[0].Key != "image" {
		t.Errorf("expected only the image key, got %v", desc.Params)
	}
}

func TestBuildRequestPathParam(t *testing.T) {
	ep, _ := Lookup("shorten_info")
	desc, err := buildRequest(ep, map[string]string{"extension": "gh1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if desc.Path != "/shorten/gh1" {
		t.Errorf("expected path /shorten/gh1, got %q", desc.Path)
	}
	if len(desc.Params) != 0 {
		t.Errorf("path parameter must not appear in the key list, got %v", desc.Params)
	}
}

func TestQueryEscaping(t *testing.T) {
	ep, _ := Lookup("supreme")
	desc, err := buildRequest(ep, map[string]string{"text": "a b&c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := desc.Query()
	if strings.Contains(q, " ") || strings.Contains(q, "b&c") {
		t.Errorf("expected escaped query, got %q", q)
	}
}

func TestURLJoinsBaseAndQuery(t *testing.T) {
	ep, _ := Lookup("drake")
	desc, _ := buildRequest(ep, map[string]string{"text1": "A", "text2": "B"})

	got := desc.URL("https://api.popcat.xyz/")
	want := "https://api.popcat.xyz/drake?text1=A&text2=B"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPostBodyIsJSON(t *testing.T) {
	ep, _ := Lookup("shorten")
	desc, err := buildRequest(ep, map[string]string{"url": "https://github.com", "extension": "gh123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body, err := desc.Body()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"extension":"gh123","url":"https://github.com"}`
	if string(body) != want {
		t.Errorf("expected body %s, got %s", want, body)
	}

	// POST URLs carry no query string.
	if got := desc.URL("https://api.popcat.xyz"); got != "https://api.popcat.xyz/shorten" {
		t.Errorf("expected bare POST URL, got %q", got)
	}
}
