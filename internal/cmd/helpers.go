package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	popcat "github.com/popcat/popcat-go"
	"github.com/popcat/popcat-go/internal/config"
	"github.com/popcat/popcat-go/internal/outfmt"
)

// newClient builds a library client from the global flags. The Pastey key is
// looked up only when loadKey is set so commands that never need it don't
// touch the keychain.
func newClient(loadKey bool) (*popcat.Client, error) {
	opts := []popcat.Option{
		popcat.WithTimeout(flags.Timeout),
		popcat.WithUserAgent("popcat-cli/" + version),
	}
	if flags.BaseURL != "" && flags.BaseURL != popcat.DefaultBaseURL {
		opts = append(opts, popcat.WithBaseURL(flags.BaseURL))
	}

	if loadKey {
		key, err := config.LoadPasteyKey()
		if err != nil && !errors.Is(err, config.ErrNotConfigured) {
			return nil, err
		}
		if key != "" {
			opts = append(opts, popcat.WithPasteyKey(key))
		}
	}

	return popcat.New(opts...), nil
}

// printResult renders a call result according to the output mode. Strings
// print raw in text mode; objects print as JSON either way.
func printResult(cmd *cobra.Command, res popcat.Result) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var value any
	if res.IsString() {
		value = res.String()
	} else {
		value = res.Object()
	}

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSONFiltered(out, value, outfmt.GetQuery(ctx), outfmt.IsJSONL(ctx))
	}

	if res.IsString() {
		_, err := fmt.Fprintln(out, res.String())
		return err
	}
	return outfmt.WriteJSON(out, value)
}

// printObject renders a plain map result, used by the service commands.
func printObject(cmd *cobra.Command, obj map[string]any) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSONFiltered(out, obj, outfmt.GetQuery(ctx), outfmt.IsJSONL(ctx))
	}
	return outfmt.WriteJSON(out, obj)
}
