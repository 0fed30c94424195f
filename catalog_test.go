package popcat

import (
	"strings"
	"testing"
)

func TestCatalogInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, ep := range Endpoints() {
		ep := ep
		t.Run(ep.Name, func(t *testing.T) {
			if seen[ep.Name] {
				t.Fatalf("duplicate endpoint name %q", ep.Name)
			}
			seen[ep.Name] = true

			if ep.Method != "GET" && ep.Method != "POST" {
				t.Errorf("unexpected method %q", ep.Method)
			}
			if !strings.HasPrefix(ep.Path, "/") {
				t.Errorf("path %q must start with /", ep.Path)
			}
			if ep.Shape == ShapeStringField && ep.ResponseField == "" {
				t.Error("string-field endpoint missing ResponseField")
			}
			if ep.Shape != ShapeStringField && ep.ResponseField != "" {
				t.Errorf("ResponseField %q set on non-string-field endpoint", ep.ResponseField)
			}
			if ep.PathParam != "" && !ep.hasParam(ep.PathParam) {
				t.Errorf("PathParam %q has no matching ParamSpec", ep.PathParam)
			}

			names := make(map[string]bool)
			for _, p := range ep.Params {
				if p.Name == "" {
					t.Error("parameter with empty name")
				}
				if names[p.Name] {
					t.Errorf("duplicate parameter %q", p.Name)
				}
				names[p.Name] = true
				if p.Kind == KindEnum && len(p.Enum) == 0 {
					t.Errorf("enum parameter %q has no allowed values", p.Name)
				}
				if p.Default != "" && p.Required {
					t.Errorf("required parameter %q carries a default", p.Name)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	ep, ok := Lookup("drake")
	if !ok || ep.Name != "drake" {
		t.Fatalf("expected drake entry, got %v %v", ep, ok)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("expected lookup miss for unknown name")
	}
}

func TestEndpointNamesSorted(t *testing.T) {
	names := EndpointNames()
	if len(names) != len(Endpoints()) {
		t.Fatalf("expected %d names, got %d", len(Endpoints()), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}

func TestRequiredAndOptionalParams(t *testing.T) {
	ep, _ := Lookup("discord")
	req := ep.RequiredParams()
	opt := ep.OptionalParams()

	if len(req) != 2 || req[0] != "username" || req[1] != "content" {
		t.Errorf("unexpected required params %v", req)
	}
	if len(opt) != 3 || opt[0] != "avatar" {
		t.Errorf("unexpected optional params %v", opt)
	}
}

func TestDefaultsOnlyOnOptionalEnums(t *testing.T) {
	ep, _ := Lookup("code")
	if !ep.RequiresKey {
		t.Error("code endpoint must require the Pastey key")
	}
	for _, p := range ep.Params {
		switch p.Name {
		case "theme":
			if p.Default != DefaultPasteTheme {
				t.Errorf("expected theme default %q, got %q", DefaultPasteTheme, p.Default)
			}
		case "language":
			if p.Default != DefaultPasteLanguage {
				t.Errorf("expected language default %q, got %q", DefaultPasteLanguage, p.Default)
			}
		}
	}
}
