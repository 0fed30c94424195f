package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestExecuteHelp(t *testing.T) {
	stdout, _, err := runCommand(t, "", "--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "popcat") {
		t.Errorf("expected help output, got %q", stdout)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	_, _, err := runCommand(t, "", "jokr")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if ExitCode(err) != exitUsage {
		t.Errorf("expected usage exit code, got %d", ExitCode(err))
	}
}

func TestEnhanceUnknownErrorSuggests(t *testing.T) {
	root := &cobra.Command{Use: "popcat"}
	root.AddCommand(&cobra.Command{Use: "joke", Run: func(*cobra.Command, []string) {}})
	root.AddCommand(&cobra.Command{Use: "fact", Run: func(*cobra.Command, []string) {}})

	err := errors.New(`unknown command "jokr" for "popcat"`)
	got := enhanceUnknownError(err, root, root)
	if !strings.Contains(got, "Did you mean") {
		t.Errorf("expected a did-you-mean hint, got %q", got)
	}
	if !strings.Contains(got, "joke") {
		t.Errorf("expected joke suggested, got %q", got)
	}

	other := errors.New("some other failure")
	if got := enhanceUnknownError(other, root, root); got != other.Error() {
		t.Errorf("expected unrelated errors untouched, got %q", got)
	}
}

func TestJSONConflictsWithOutput(t *testing.T) {
	_, _, err := runCommand(t, "", "endpoints", "--json", "--output", "text")
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !strings.Contains(err.Error(), "--json conflicts") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestQueryForcesJSONOutput(t *testing.T) {
	stdout, _, err := runCommand(t, "", "endpoints", "--query", ".[0].name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, `"`) {
		t.Errorf("expected JSON output, got %q", stdout)
	}
}

func TestQueryConflictsWithExplicitText(t *testing.T) {
	_, _, err := runCommand(t, "", "endpoints", "--query", ".name", "--output", "text")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := runCommand(t, "", "endpoints", "--output", "yaml")
	if err == nil {
		t.Fatal("expected error for invalid output format")
	}
}

func TestExtractQuoted(t *testing.T) {
	if got := extractQuoted(`unknown command "jok" for "popcat"`); got != "jok" {
		t.Errorf("expected jok, got %q", got)
	}
	if got := extractQuoted("no quotes"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "popcat-cli version dev") {
		t.Errorf("unexpected version output %q", stdout)
	}
}
