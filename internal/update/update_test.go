package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func withReleaseServer(t *testing.T, status int, body string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	original := GitHubReleasesURL
	GitHubReleasesURL = server.URL
	t.Cleanup(func() { GitHubReleasesURL = original })
}

func TestCheckForUpdateAvailable(t *testing.T) {
	withReleaseServer(t, 200, `{"tag_name": "v2.0.0", "html_url": "https://github.com/popcat/popcat-go/releases/v2.0.0"}`)

	result := CheckForUpdate(context.Background(), "1.0.0")
	if result == nil {
		t.Fatal("expected a result")
	}
	if !result.UpdateAvailable {
		t.Error("expected update available")
	}
	if result.LatestVersion != "2.0.0" {
		t.Errorf("expected latest 2.0.0, got %q", result.LatestVersion)
	}
}

func TestCheckForUpdateCurrent(t *testing.T) {
	withReleaseServer(t, 200, `{"tag_name": "v1.0.0"}`)

	result := CheckForUpdate(context.Background(), "1.0.0")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.UpdateAvailable {
		t.Error("expected no update for matching version")
	}
}

func TestCheckForUpdateDevSkipped(t *testing.T) {
	if CheckForUpdate(context.Background(), "dev") != nil {
		t.Error("dev builds must skip the check")
	}
	if CheckForUpdate(context.Background(), "") != nil {
		t.Error("empty version must skip the check")
	}
}

func TestCheckForUpdateFailsSilently(t *testing.T) {
	withReleaseServer(t, 500, "")
	if CheckForUpdate(context.Background(), "1.0.0") != nil {
		t.Error("server errors must return nil")
	}

	withReleaseServer(t, 200, "not json")
	if CheckForUpdate(context.Background(), "1.0.0") != nil {
		t.Error("bad payloads must return nil")
	}
}
