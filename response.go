package popcat

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Shape declares how an endpoint's successful response is turned into a
// Result.
type Shape int

const (
	// ShapeObject decodes the whole body as a JSON object.
	ShapeObject Shape = iota
	// ShapeStringField decodes the body as JSON and extracts the single
	// string field the endpoint declares in ResponseField.
	ShapeStringField
	// ShapeResourceURL treats the built request URL itself as the payload;
	// the remote serves the generated resource at that address, so a 2xx
	// status is all that is checked.
	ShapeResourceURL
)

func (s Shape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeStringField:
		return "string-field"
	case ShapeResourceURL:
		return "resource-url"
	default:
		return "unknown"
	}
}

// Result is the normalized successful outcome of a call: either a single
// string payload or a decoded JSON object, never both.
type Result struct {
	str    string
	object map[string]any
}

// IsString reports whether the result carries a string payload.
func (r Result) IsString() bool { return r.object == nil }

// String returns the string payload; empty for object results.
func (r Result) String() string { return r.str }

// Object returns the decoded JSON object; nil for string results.
func (r Result) Object() map[string]any { return r.object }

// maxErrorBody bounds how much of a non-JSON error body is echoed back.
const maxErrorBody = 256

// interpret normalizes a transport outcome into the endpoint's declared
// result shape or a classified error. Mismatches always become DecodeError,
// never a best-effort partial value.
func interpret(ep *Endpoint, requestURL string, status int, body []byte) (Result, error) {
	if status < 200 || status > 299 {
		return Result{}, &RemoteError{Status: status, Message: remoteMessage(body)}
	}

	switch ep.Shape {
	case ShapeResourceURL:
		return Result{str: requestURL}, nil

	case ShapeStringField:
		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			return Result{}, &DecodeError{Endpoint: ep.Name, Reason: "body is not valid JSON", Err: err}
		}
		value, ok := fields[ep.ResponseField].(string)
		if !ok {
			return Result{}, &DecodeError{
				Endpoint: ep.Name,
				Reason:   fmt.Sprintf("missing or non-string field %q", ep.ResponseField),
			}
		}
		return Result{str: value}, nil

	default: // ShapeObject
		var object map[string]any
		if err := json.Unmarshal(body, &object); err != nil {
			return Result{}, &DecodeError{Endpoint: ep.Name, Reason: "body is not valid JSON", Err: err}
		}
		return Result{object: object}, nil
	}
}

// remoteMessage extracts a human-readable message from an error body: a JSON
// "error" or "message" field when present, otherwise the raw body trimmed to
// a bounded length.
func remoteMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	msg := strings.TrimSpace(string(body))
	if len(msg) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		msg = msg[:cut]
	}
	return msg
}
