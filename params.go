package popcat

import (
	"fmt"
	"net/url"
	"strings"
)

// ParamKind is the closed set of field kinds used across the catalog.
type ParamKind int

const (
	// KindText accepts any non-empty string.
	KindText ParamKind = iota
	// KindURL accepts an absolute URL with a scheme. The URL is not fetched.
	KindURL
	// KindColor accepts a #RGB/#RRGGBB hex literal or a named color.
	KindColor
	// KindEnum accepts a member of a fixed allowed set.
	KindEnum
)

func (k ParamKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindURL:
		return "url"
	case KindColor:
		return "color"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ParamSpec declares one logical input to an endpoint. Specs are defined
// once in the catalog and never mutated.
type ParamSpec struct {
	Name     string
	Kind     ParamKind
	Required bool
	Default  string
	Enum     []string

	// Normalize rewrites the raw value before validation (e.g. stripping a
	// leading "r/" from subreddit names). Optional.
	Normalize func(string) string
	// Check adds an endpoint-specific constraint on top of the kind check
	// (e.g. shortener extensions must be alphanumeric). Optional.
	Check func(string) error
}

// namedColors is the allow-list accepted by KindColor alongside hex
// literals. Mirrors the CSS basic color keywords the API understands.
var namedColors = map[string]bool{
	"black": true, "silver": true, "gray": true, "grey": true, "white": true,
	"maroon": true, "red": true, "purple": true, "fuchsia": true,
	"green": true, "lime": true, "olive": true, "yellow": true,
	"navy": true, "blue": true, "teal": true, "aqua": true, "cyan": true,
	"magenta": true, "orange": true, "pink": true, "brown": true,
	"gold": true, "indigo": true, "violet": true,
}

// validate checks a single value against its spec. Pure function: no side
// effects, no network. Returns the (possibly normalized) value.
func validate(spec ParamSpec, value string, present bool) (string, error) {
	if !present || value == "" {
		if spec.Required {
			reason := "required parameter is missing"
			if present {
				reason = "must be a non-empty string"
			}
			return "", &ValidationError{Param: spec.Name, Reason: reason}
		}
		if spec.Default != "" {
			value = spec.Default
			present = true
		} else {
			return "", nil
		}
	}

	if spec.Normalize != nil {
		value = spec.Normalize(value)
	}

	switch spec.Kind {
	case KindText:
		if strings.TrimSpace(value) == "" {
			return "", &ValidationError{Param: spec.Name, Reason: "must be a non-empty string"}
		}
	case KindURL:
		if err := checkURL(value); err != nil {
			return "", &ValidationError{Param: spec.Name, Reason: err.Error()}
		}
	case KindColor:
		if err := checkColor(value); err != nil {
			return "", &ValidationError{Param: spec.Name, Reason: err.Error()}
		}
	case KindEnum:
		if !enumMember(spec.Enum, value) {
			return "", &ValidationError{
				Param:  spec.Name,
				Reason: fmt.Sprintf("%q is not one of the allowed values", value),
			}
		}
	}

	if spec.Check != nil {
		if err := spec.Check(value); err != nil {
			return "", &ValidationError{Param: spec.Name, Reason: err.Error()}
		}
	}
	return value, nil
}

func checkURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("not a valid URL: %v", err)
	}
	if !u.IsAbs() || u.Scheme == "" {
		return fmt.Errorf("must be an absolute URL with a scheme")
	}
	return nil
}

func checkColor(value string) error {
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return fmt.Errorf("hex color must be #RGB or #RRGGBB")
		}
		for _, r := range hex {
			if !isHexDigit(r) {
				return fmt.Errorf("invalid hex digit %q", r)
			}
		}
		return nil
	}
	if !namedColors[strings.ToLower(value)] {
		return fmt.Errorf("%q is neither a hex literal nor a known color name", value)
	}
	return nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func enumMember(allowed []string, value string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// caseFold returns a Normalize func mapping a value onto the canonical
// casing of the given set; unknown values pass through for the enum check
// to reject.
func caseFold(canonical []string) func(string) string {
	return func(v string) string {
		for _, c := range canonical {
			if strings.EqualFold(c, v) {
				return c
			}
		}
		return v
	}
}
