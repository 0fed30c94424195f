package popcat

import "context"

// Defaults applied when a paste is created without an explicit theme or
// language.
const (
	DefaultPasteTheme    = "GitHub Dark"
	DefaultPasteLanguage = "PlainText"
)

// PasteThemes is the fixed set of syntax-highlighting themes accepted by the
// Pastey service. Theme names are matched exactly.
var PasteThemes = []string{
	"Active4D", "All Hallows Eve", "Amy", "Birds of Paradise", "Blackboard",
	"Brilliance Black", "Brilliance Dull", "Chrome DevTools", "Clouds Midnight",
	"Clouds", "Cobalt", "Cobalt2", "Dawn", "Dominion Day", "Dracula", "Dreamweaver",
	"Eiffel", "Espresso Libre", "GitHub Dark", "GitHub Light", "GitHub", "IDLE",
	"idleFingers", "iPlastic", "Katzenmilch", "krTheme", "Kuroir Theme", "LAZY",
	"Merbivore Soft", "Merbivore", "monoindustrial", "Monokai Bright", "Monokai",
	"Night Owl", "Nord", "Oceanic Next", "Pastels on Dark", "Slush and Poppies",
	"SpaceCadet", "Sunburst", "Tomorrow", "Twilight", "Upstream Sunburst",
	"Vibrant Ink", "Xcode_default", "Zenburnesque",
}

// PasteLanguages is the fixed set of languages accepted by the Pastey
// service. Matching is case-insensitive; values are normalized to this
// canonical casing before being sent.
var PasteLanguages = []string{
	"JavaScript", "JSON", "HTML", "CSS", "Markdown", "PlainText", "Python",
	"Java", "C++", "C", "C#", "TypeScript", "PHP", "Ruby", "Go", "Rust",
	"Swift", "Kotlin", "Dart", "Scala", "R", "MATLAB", "SQL", "Shell",
	"PowerShell", "Bash", "Perl", "Lua", "Haskell", "Erlang", "Elixir",
	"F#", "OCaml", "Clojure", "Lisp", "Scheme", "Prolog", "VHDL", "Verilog",
	"Assembly", "Fortran", "COBOL", "Ada", "Pascal", "Delphi", "VB.NET",
	"VBA", "ActionScript", "CoffeeScript", "LiveScript", "PureScript",
	"Elm", "ReasonML", "Crystal", "Nim", "Zig", "V", "Dlang",
}

// PasteyService creates syntax-highlighted code pastes on
// code.popcat.xyz. Every call carries the client's Pastey API key as a
// bearer credential; construct the Client with WithPasteyKey.
type PasteyService struct {
	c *Client
}

// Pastey returns the code-paste service.
func (c *Client) Pastey() PasteyService {
	return PasteyService{c: c}
}

// CreatePaste creates a paste and returns the API's confirmation object,
// which includes the paste's access URL. Empty theme or language fall back
// to DefaultPasteTheme and DefaultPasteLanguage.
func (s PasteyService) CreatePaste(ctx context.Context, title, description, code, theme, language string) (map[string]any, error) {
	args := map[string]string{
		"title":       title,
		"description": description,
		"code":        code,
	}
	if theme != "" {
		args["theme"] = theme
	}
	if language != "" {
		args["language"] = language
	}
	return s.c.callObject(ctx, "code", args)
}

// Themes returns the accepted theme names.
func (s PasteyService) Themes() []string {
	out := make([]string, len(PasteThemes))
	copy(out, PasteThemes)
	return out
}

// Languages returns the accepted language names.
func (s PasteyService) Languages() []string {
	out := make([]string, len(PasteLanguages))
	copy(out, PasteLanguages)
	return out
}
