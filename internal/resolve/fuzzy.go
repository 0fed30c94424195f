// Package resolve provides fuzzy matching over endpoint and command names.
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

var (
	ErrEmptyQuery = errors.New("empty search query")
	ErrEmptyItems = errors.New("no names to match against")
)

// AmbiguousError indicates multiple candidates matched equally well.
// Candidates are sorted best-first and capped.
type AmbiguousError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "ambiguous match for %q", e.Query)
	if len(e.Candidates) > 0 {
		b.WriteString(", candidates:")
		for _, c := range e.Candidates {
			_, _ = fmt.Fprintf(&b, "\n  %s", c)
		}
	}
	return b.String()
}

type lowerSource []string

func (s lowerSource) String(i int) string { return strings.ToLower(s[i]) }
func (s lowerSource) Len() int            { return len(s) }

// Match finds the best matching name.
//
// Behavior:
// - Empty query or empty names are errors.
// - Prefers exact case-insensitive matches over fuzzy matches.
// - If the top two fuzzy results tie on score, returns *AmbiguousError.
func Match(query string, names []string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	if len(names) == 0 {
		return "", ErrEmptyItems
	}

	// Exact case-insensitive match first (kubectl-style: exact wins).
	for _, name := range names {
		if strings.EqualFold(name, query) {
			return name, nil
		}
	}

	results := fuzzy.FindFrom(strings.ToLower(query), lowerSource(names))
	if len(results) == 0 {
		return "", fmt.Errorf("no match found for %q", query)
	}
	if len(results) > 1 && results[0].Score == results[1].Score {
		return "", &AmbiguousError{
			Query:      query,
			Candidates: topNames(names, results, 5),
		}
	}
	return names[results[0].Index], nil
}

// Suggest returns up to limit names ranked by fuzzy score (best first).
// Used to build "did you mean" hints for unknown commands.
func Suggest(query string, names []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(names) == 0 || limit <= 0 {
		return nil
	}

	results := fuzzy.FindFrom(strings.ToLower(query), lowerSource(names))
	return topNames(names, results, limit)
}

func topNames(names []string, results fuzzy.Matches, limit int) []string {
	if len(results) == 0 || limit <= 0 {
		return nil
	}
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = names[r.Index]
	}
	return out
}
