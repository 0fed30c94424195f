package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/popcat/popcat-go/internal/iocontext"
)

// runCommand executes the CLI with captured streams and optional stdin.
func runCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	ctx := iocontext.WithIO(context.Background(), &iocontext.IO{
		Out:    &out,
		ErrOut: &errOut,
		In:     strings.NewReader(stdin),
	})

	err = Execute(ctx, args)
	return out.String(), errOut.String(), err
}
