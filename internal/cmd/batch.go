package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	popcat "github.com/popcat/popcat-go"
	"github.com/popcat/popcat-go/internal/outfmt"
)

// DefaultConcurrency is the default number of concurrent batch workers.
const DefaultConcurrency = 5

// batchRequest is one line of batch input.
type batchRequest struct {
	Endpoint string            `json:"endpoint"`
	Args     map[string]string `json:"args,omitempty"`
}

// batchResult is one line of batch output. Results are emitted in input
// order regardless of completion order.
type batchResult struct {
	Endpoint string `json:"endpoint"`
	OK       bool   `json:"ok"`
	Result   any    `json:"result,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newBatchCmd() *cobra.Command {
	var concurrency int64

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Run many endpoint calls from a JSONL file",
		Long: strings.TrimSpace(`
Run endpoint calls in bulk. Input is JSON Lines, one call per line:

  {"endpoint": "joke"}
  {"endpoint": "drake", "args": {"text1": "A", "text2": "B"}}

Reads from the given file, or from stdin when omitted or '-'. Results are
written as JSON Lines in input order; individual failures do not stop the
batch.
`),
		Args: cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			requests, err := readBatchInput(cmd, args)
			if err != nil {
				return err
			}
			if len(requests) == 0 {
				return fmt.Errorf("batch input is empty")
			}

			client, err := newClient(true)
			if err != nil {
				return err
			}

			results := runBatch(cmd.Context(), client, requests, concurrency)

			out := cmd.OutOrStdout()
			query := outfmt.GetQuery(cmd.Context())
			failures := 0
			for _, r := range results {
				if !r.OK {
					failures++
				}
				if err := outfmt.WriteJSONFiltered(out, r, query, true); err != nil {
					return err
				}
			}
			if failures > 0 {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%d/%d calls failed\n", failures, len(results))
			}
			return nil
		}),
	}

	cmd.Flags().Int64VarP(&concurrency, "concurrency", "c", DefaultConcurrency, "Maximum concurrent calls")
	return cmd
}

func readBatchInput(cmd *cobra.Command, args []string) ([]batchRequest, error) {
	var reader io.Reader
	if len(args) == 0 || args[0] == "-" {
		reader = cmd.InOrStdin()
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open batch file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
	}

	var requests []batchRequest
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var req batchRequest
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			return nil, fmt.Errorf("line %d: invalid JSON: %w", line, err)
		}
		if req.Endpoint == "" {
			return nil, fmt.Errorf("line %d: missing endpoint name", line)
		}
		requests = append(requests, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}
	return requests, nil
}

// runBatch executes the requests concurrently with bounded parallelism.
// Individual call errors are recorded in the result, not returned.
func runBatch(ctx context.Context, client *popcat.Client, requests []batchRequest, concurrency int64) []batchResult {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	sem := semaphore.NewWeighted(concurrency)
	results := make([]batchResult, len(requests))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	for i, req := range requests {
		i, req := i, req

		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				mu.Lock()
				results[i] = batchResult{Endpoint: req.Endpoint, Error: err.Error()}
				mu.Unlock()
				return nil
			}
			defer sem.Release(1)

			res, err := client.Call(ctx, req.Endpoint, req.Args)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[i] = batchResult{Endpoint: req.Endpoint, Error: err.Error()}
				return nil
			}
			r := batchResult{Endpoint: req.Endpoint, OK: true}
			if res.IsString() {
				r.Result = res.String()
			} else {
				r.Result = res.Object()
			}
			results[i] = r
			return nil
		})
	}

	_ = g.Wait()
	return results
}
