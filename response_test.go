package popcat

import (
	"errors"
	"strings"
	"testing"
)

func TestInterpretStringField(t *testing.T) {
	ep := &Endpoint{Name: "translate", Shape: ShapeStringField, ResponseField: "translated"}

	tests := []struct {
		name        string
		status      int
		body        string
		want        string
		expectError bool
		errorKind   any
	}{
		{
			name:   "extracts declared field",
			status: 200,
			body:   `{"translated": "hola"}`,
			want:   "hola",
		},
		{
			name:   "url payload survives verbatim",
			status: 200,
			body:   `{"translated": "https://cdn.example/x.png"}`,
			want:   "https://cdn.example/x.png",
		},
		{
			name:        "missing field",
			status:      200,
			body:        `{"other": "x"}`,
			expectError: true,
			errorKind:   &DecodeError{},
		},
		{
			name:        "non-string field",
			status:      200,
			body:        `{"translated": 42}`,
			expectError: true,
			errorKind:   &DecodeError{},
		},
		{
			name:        "non-json body",
			status:      200,
			body:        "not json",
			expectError: true,
			errorKind:   &DecodeError{},
		},
		{
			name:        "remote error wins over shape",
			status:      500,
			body:        `{"translated": "hola"}`,
			expectError: true,
			errorKind:   &RemoteError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := interpret(ep, "https://api.popcat.xyz/translate", tt.status, []byte(tt.body))
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				switch tt.errorKind.(type) {
				case *DecodeError:
					var de *DecodeError
					if !errors.As(err, &de) {
						t.Errorf("expected *DecodeError, got %T", err)
					}
				case *RemoteError:
					var re *RemoteError
					if !errors.As(err, &re) {
						t.Errorf("expected *RemoteError, got %T", err)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.IsString() || res.String() != tt.want {
				t.Errorf("expected string result %q, got %q", tt.want, res.String())
			}
		})
	}
}

func TestInterpretObject(t *testing.T) {
	ep := &Endpoint{Name: "weather", Shape: ShapeObject}

	res, err := interpret(ep, "", 200, []byte(`{"location": "London", "temperature": "15"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsString() {
		t.Fatal("expected object result")
	}
	if res.Object()["location"] != "London" {
		t.Errorf("expected location London, got %v", res.Object()["location"])
	}

	if _, err := interpret(ep, "", 200, []byte("not json")); err == nil {
		t.Error("expected DecodeError for non-JSON body")
	}
}

func TestInterpretResourceURL(t *testing.T) {
	ep := &Endpoint{Name: "drake", Shape: ShapeResourceURL}
	url := "https://api.popcat.xyz/drake?text1=A&text2=B"

	// The body is the rendered image; it is never decoded.
	res, err := interpret(ep, url, 200, []byte{0x89, 0x50, 0x4e, 0x47})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.String() != url {
		t.Errorf("expected request URL back, got %q", res.String())
	}
}

func TestInterpretRemoteErrorStatusPreserved(t *testing.T) {
	ep := &Endpoint{Name: "weather", Shape: ShapeObject}

	for _, status := range []int{301, 400, 404, 429, 500, 503} {
		_, err := interpret(ep, "", status, []byte(`{}`))
		re, ok := IsRemote(err)
		if !ok {
			t.Fatalf("status %d: expected RemoteError, got %v", status, err)
		}
		if re.Status != status {
			t.Errorf("expected status %d preserved, got %d", status, re.Status)
		}
	}
}

func TestRemoteMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error": "not found"}`, "not found"},
		{"message field", `{"message": "slow down"}`, "slow down"},
		{"error preferred over message", `{"error": "a", "message": "b"}`, "a"},
		{"raw body fallback", "plain failure", "plain failure"},
		{"empty body", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := remoteMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRemoteMessageBounded(t *testing.T) {
	long := strings.Repeat("x", 4096)
	got := remoteMessage([]byte(long))
	if len(got) > maxErrorBody {
		t.Errorf("expected message trimmed to %d bytes, got %d", maxErrorBody, len(got))
	}
}

func TestIgnoreStatus(t *testing.T) {
	err := error(&RemoteError{Status: 404})
	if IgnoreStatus(err, 404) != nil {
		t.Error("expected 404 to be ignored")
	}
	if IgnoreStatus(err, 500) == nil {
		t.Error("expected non-matching status to propagate")
	}
	other := errors.New("boom")
	if IgnoreStatus(other, 404) != other {
		t.Error("expected non-remote errors to pass through")
	}
}
