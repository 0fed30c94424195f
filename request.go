package popcat

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Param is one key/value pair of a built request, in declaration order.
type Param struct {
	Key   string
	Value string
}

// RequestDescriptor is a fully-built, ready-to-send request. It is
// constructed fresh per call, only after every parameter validated, and is
// never mutated once built.
type RequestDescriptor struct {
	Method string
	Path   string
	Params []Param // query string for GET, JSON body for POST
}

// Query renders the parameters as a query string in declaration order.
// Empty for requests without parameters.
func (r *RequestDescriptor) Query() string {
	if len(r.Params) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range r.Params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// URL joins the base URL, path, and query string.
func (r *RequestDescriptor) URL(base string) string {
	u := strings.TrimRight(base, "/") + r.Path
	if r.Method == "GET" {
		if q := r.Query(); q != "" {
			u += "?" + q
		}
	}
	return u
}

// Body renders the parameters as a JSON object for POST requests. Returns
// nil for GET requests and for empty parameter lists.
func (r *RequestDescriptor) Body() ([]byte, error) {
	if r.Method == "GET" || len(r.Params) == 0 {
		return nil, nil
	}
	body := make(map[string]string, len(r.Params))
	for _, p := range r.Params {
		body[p.Key] = p.Value
	}
	return json.Marshal(body)
}

// buildRequest validates every argument against the endpoint's parameter
// specs and assembles the descriptor. Key order follows the catalog's
// declaration order, not the caller's argument order, so identical inputs
// always serialize identically.
func buildRequest(ep *Endpoint, args map[string]string) (*RequestDescriptor, error) {
	for name := range args {
		if !ep.hasParam(name) {
			return nil, &ValidationError{Param: name, Reason: "unknown parameter for endpoint " + ep.Name}
		}
	}

	desc := &RequestDescriptor{Method: ep.Method, Path: ep.Path}
	for _, spec := range ep.Params {
		raw, present := args[spec.Name]
		value, err := validate(spec, raw, present)
		if err != nil {
			return nil, err
		}
		if value == "" {
			continue // absent optional
		}
		if ep.PathParam == spec.Name {
			desc.Path = strings.TrimRight(ep.Path, "/") + "/" + url.PathEscape(value)
			continue
		}
		desc.Params = append(desc.Params, Param{Key: spec.Name, Value: value})
	}
	return desc, nil
}
