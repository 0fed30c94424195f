package cmd

import (
	"github.com/spf13/cobra"
)

// newShortenCmd returns the shorten command with the info subcommand.
// `popcat shorten <url> <extension>` creates a link; `popcat shorten info
// <extension>` looks one up.
func newShortenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shorten <url> <extension>",
		Short: "Shorten a URL under popcat.xyz",
		Args:  cobra.ExactArgs(2),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := newClient(false)
			if err != nil {
				return err
			}
			result, err := client.Shortener().Shorten(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printObject(cmd, result)
		}),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info <extension>",
		Short: "Look up an existing short link",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			client, err := newClient(false)
			if err != nil {
				return err
			}
			result, err := client.Shortener().Info(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printObject(cmd, result)
		}),
	})

	return cmd
}
