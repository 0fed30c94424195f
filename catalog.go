package popcat

import (
	"fmt"
	"sort"
	"strings"
)

// Endpoint is one entry of the catalog: a fixed remote operation plus the
// declared shape of its inputs and output. The whole library is this table
// instantiated per entry; adding an endpoint is a data-entry operation.
type Endpoint struct {
	Name   string
	Method string
	Path   string
	Params []ParamSpec
	Shape  Shape

	// ResponseField names the JSON field holding the payload for
	// ShapeStringField endpoints.
	ResponseField string
	// PathParam names the parameter appended to Path as a segment instead of
	// being sent as a query/body key (e.g. /shorten/{extension}).
	PathParam string
	// RequiresKey marks endpoints that need the Pastey API key.
	RequiresKey bool
}

func (ep *Endpoint) hasParam(name string) bool {
	for _, p := range ep.Params {
		if p.Name == name {
			return true
		}
	}
	return false
}

// RequiredParams returns the names of required parameters in declaration
// order.
func (ep *Endpoint) RequiredParams() []string {
	var names []string
	for _, p := range ep.Params {
		if p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

// OptionalParams returns the names of optional parameters in declaration
// order.
func (ep *Endpoint) OptionalParams() []string {
	var names []string
	for _, p := range ep.Params {
		if !p.Required {
			names = append(names, p.Name)
		}
	}
	return names
}

func text(name string) ParamSpec {
	return ParamSpec{Name: name, Kind: KindText, Required: true}
}

func imageURL(name string) ParamSpec {
	return ParamSpec{Name: name, Kind: KindURL, Required: true}
}

// TranslateTargets is the allowed set of translation target codes.
var TranslateTargets = []string{
	"ar", "de", "en", "es", "fr", "hi", "it", "ja", "ko", "nl",
	"pl", "pt", "ru", "sv", "tr", "zh",
}

func imageEndpoint(name string) Endpoint {
	return Endpoint{
		Name:   name,
		Method: "GET",
		Path:   "/" + name,
		Params: []ParamSpec{imageURL("image")},
		Shape:  ShapeResourceURL,
	}
}

func textMeme(name string) Endpoint {
	return Endpoint{
		Name:   name,
		Method: "GET",
		Path:   "/" + name,
		Params: []ParamSpec{text("text")},
		Shape:  ShapeResourceURL,
	}
}

func twoTextMeme(name string) Endpoint {
	return Endpoint{
		Name:   name,
		Method: "GET",
		Path:   "/" + name,
		Params: []ParamSpec{text("text1"), text("text2")},
		Shape:  ShapeResourceURL,
	}
}

func textTransform(name, field string) Endpoint {
	return Endpoint{
		Name:          name,
		Method:        "GET",
		Path:          "/" + name,
		Params:        []ParamSpec{text("text")},
		Shape:         ShapeStringField,
		ResponseField: field,
	}
}

func objectQuery(name, param string) Endpoint {
	return Endpoint{
		Name:   name,
		Method: "GET",
		Path:   "/" + name,
		Params: []ParamSpec{text(param)},
		Shape:  ShapeObject,
	}
}

func objectNoParams(name string) Endpoint {
	return Endpoint{Name: name, Method: "GET", Path: "/" + name, Shape: ShapeObject}
}

// catalog is the wire contract with api.popcat.xyz. Paths, parameter names,
// and response fields are the bit-exact compatibility surface; changing one
// breaks compatibility with the remote service.
var catalog = []Endpoint{
	// Image filters.
	imageEndpoint("jail"),
	imageEndpoint("blur"),
	imageEndpoint("invert"),
	imageEndpoint("greyscale"),
	imageEndpoint("drip"),
	imageEndpoint("clown"),
	imageEndpoint("wanted"),
	imageEndpoint("ad"),
	imageEndpoint("uncover"),
	imageEndpoint("communism"),
	imageEndpoint("jokeoverhead"),
	imageEndpoint("mnm"),
	{
		Name: "colorify", Method: "GET", Path: "/colorify",
		Params: []ParamSpec{
			imageURL("image"),
			{Name: "color", Kind: KindColor, Required: true},
		},
		Shape: ShapeResourceURL,
	},
	{
		Name: "gun", Method: "GET", Path: "/gun",
		Params: []ParamSpec{
			imageURL("image"),
			{Name: "text", Kind: KindText},
		},
		Shape: ShapeResourceURL,
	},

	// Meme generators.
	twoTextMeme("drake"),
	twoTextMeme("pooh"),
	twoTextMeme("happysad"),
	textMeme("supreme"),
	textMeme("oogway"),
	textMeme("biden"),
	textMeme("pikachu"),
	textMeme("sadcat"),
	textMeme("unforgivable"),
	textMeme("couldread"),
	textMeme("facts"),
	textMeme("alert"),
	textMeme("caution"),
	{
		Name: "ship", Method: "GET", Path: "/ship",
		Params: []ParamSpec{imageURL("user1"), imageURL("user2")},
		Shape:  ShapeResourceURL,
	},
	{
		Name: "opinion", Method: "GET", Path: "/opinion",
		Params: []ParamSpec{imageURL("image"), text("text")},
		Shape:  ShapeResourceURL,
	},
	{
		Name: "quote", Method: "GET", Path: "/quote",
		Params: []ParamSpec{imageURL("image"), text("text"), text("name")},
		Shape:  ShapeResourceURL,
	},
	{
		Name: "discord", Method: "GET", Path: "/discord",
		Params: []ParamSpec{
			text("username"),
			text("content"),
			{Name: "avatar", Kind: KindURL},
			{Name: "color", Kind: KindColor},
			{Name: "timestamp", Kind: KindText},
		},
		Shape: ShapeResourceURL,
	},
	{
		Name: "welcomecard", Method: "GET", Path: "/welcomecard",
		Params: []ParamSpec{
			{Name: "background", Kind: KindURL, Required: true, Check: checkWelcomeBackground},
			imageURL("avatar"),
			text("text1"),
			text("text2"),
			text("text3"),
		},
		Shape: ShapeResourceURL,
	},

	// Text transforms.
	{
		Name: "translate", Method: "GET", Path: "/translate",
		Params: []ParamSpec{
			text("text"),
			{Name: "to", Kind: KindEnum, Required: true, Enum: TranslateTargets},
		},
		Shape:         ShapeStringField,
		ResponseField: "translated",
	},
	textTransform("reverse", "text"),
	textTransform("mock", "text"),
	textTransform("doublestruck", "text"),
	textTransform("texttomorse", "morse"),
	textTransform("encode", "binary"),
	{
		Name: "decode", Method: "GET", Path: "/decode",
		Params: []ParamSpec{
			{Name: "binary", Kind: KindText, Required: true, Check: checkBinary},
		},
		Shape:         ShapeStringField,
		ResponseField: "decoded",
	},
	objectQuery("lulcat", "text"),

	// Data lookups.
	objectQuery("weather", "q"),
	objectQuery("github", "user"),
	objectQuery("npm", "q"),
	objectQuery("steam", "q"),
	objectQuery("imdb", "q"),
	objectQuery("country", "name"),
	objectQuery("periodic_table", "element"),
	{
		Name: "colorinfo", Method: "GET", Path: "/colorinfo",
		Params: []ParamSpec{{Name: "color", Kind: KindColor, Required: true}},
		Shape:  ShapeObject,
	},
	objectNoParams("randomcolor"),
	{
		Name: "subreddit", Method: "GET", Path: "/subreddit",
		Params: []ParamSpec{{
			Name: "subreddit", Kind: KindText, Required: true,
			Normalize: func(v string) string { return strings.TrimPrefix(v, "r/") },
		}},
		Shape: ShapeObject,
	},
	objectQuery("itunes", "q"),
	objectQuery("lyrics", "song"),
	{
		Name: "chatbot", Method: "GET", Path: "/chatbot",
		Params: []ParamSpec{text("msg"), text("owner"), text("botname")},
		Shape:  ShapeObject,
	},

	// Random content.
	{Name: "joke", Method: "GET", Path: "/joke", Shape: ShapeStringField, ResponseField: "joke"},
	{Name: "fact", Method: "GET", Path: "/fact", Shape: ShapeStringField, ResponseField: "fact"},
	{Name: "eightball", Method: "GET", Path: "/8ball", Shape: ShapeStringField, ResponseField: "answer"},
	objectNoParams("randommeme"),
	objectNoParams("car"),
	objectNoParams("showerthought"),
	objectNoParams("wouldyourather"),

	// Utilities.
	{
		Name: "screenshot", Method: "GET", Path: "/screenshot",
		Params: []ParamSpec{{Name: "url", Kind: KindURL, Required: true}},
		Shape:  ShapeResourceURL,
	},

	// Stateful services.
	{
		Name: "code", Method: "POST", Path: "/code",
		Params: []ParamSpec{
			text("title"),
			text("description"),
			text("code"),
			{Name: "theme", Kind: KindEnum, Default: DefaultPasteTheme, Enum: PasteThemes},
			{Name: "language", Kind: KindEnum, Default: DefaultPasteLanguage, Enum: PasteLanguages, Normalize: caseFold(PasteLanguages)},
		},
		Shape:       ShapeObject,
		RequiresKey: true,
	},
	{
		Name: "shorten", Method: "POST", Path: "/shorten",
		Params: []ParamSpec{
			{Name: "url", Kind: KindURL, Required: true},
			{Name: "extension", Kind: KindText, Required: true, Check: checkExtension},
		},
		Shape: ShapeObject,
	},
	{
		Name: "shorten_info", Method: "GET", Path: "/shorten",
		Params: []ParamSpec{
			{Name: "extension", Kind: KindText, Required: true, Check: checkExtension},
		},
		Shape:     ShapeObject,
		PathParam: "extension",
	},
}

var catalogByName = func() map[string]*Endpoint {
	m := make(map[string]*Endpoint, len(catalog))
	for i := range catalog {
		m[catalog[i].Name] = &catalog[i]
	}
	return m
}()

// Lookup returns the catalog entry for name.
func Lookup(name string) (*Endpoint, bool) {
	ep, ok := catalogByName[name]
	return ep, ok
}

// EndpointNames returns every catalog entry name, sorted.
func EndpointNames() []string {
	names := make([]string, 0, len(catalog))
	for i := range catalog {
		names = append(names, catalog[i].Name)
	}
	sort.Strings(names)
	return names
}

// Endpoints returns the full catalog in declaration order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(catalog))
	copy(out, catalog)
	return out
}

func checkWelcomeBackground(v string) error {
	if !strings.HasPrefix(v, "https://") {
		return fmt.Errorf("background image URL must use HTTPS")
	}
	if !strings.HasSuffix(strings.ToLower(v), ".png") {
		return fmt.Errorf("background image must be a PNG file")
	}
	return nil
}

func checkBinary(v string) error {
	for _, r := range v {
		if r != '0' && r != '1' && r != ' ' {
			return fmt.Errorf("binary string must contain only 0s and 1s")
		}
	}
	return nil
}

func checkExtension(v string) error {
	if len(v) < 3 || len(v) > 20 {
		return fmt.Errorf("extension must be between 3 and 20 characters")
	}
	for _, r := range v {
		alnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !alnum {
			return fmt.Errorf("extension must contain only alphanumeric characters")
		}
	}
	return nil
}
