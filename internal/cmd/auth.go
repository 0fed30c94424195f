package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/popcat/popcat-go/internal/config"
)

// newAuthCmd returns the auth command with subcommands
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the Pastey API key",
		Long:  "Store and manage the Pastey API key used by the paste commands. The key is kept in your OS keychain.",
	}

	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())

	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save the Pastey API key",
		Long: strings.TrimSpace(`
Save the Pastey API key securely to your OS keychain.

Pass the key with --key, or pipe it on stdin:

  popcat auth login --key YOUR_KEY
  echo YOUR_KEY | popcat auth login
`),
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if key == "" {
				read, err := readKeyFromStdin(cmd)
				if err != nil {
					return err
				}
				key = read
			}
			if key == "" {
				return fmt.Errorf("--key is required (or pipe the key on stdin)")
			}

			if err := config.SavePasteyKey(key); err != nil {
				return fmt.Errorf("failed to save API key: %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Pastey API key saved.")
			return nil
		}),
	}

	cmd.Flags().StringVar(&key, "key", "", "Pastey API key")
	return cmd
}

func readKeyFromStdin(cmd *cobra.Command) (string, error) {
	stdin := cmd.InOrStdin()
	if stdin == os.Stdin {
		info, err := os.Stdin.Stat()
		if err != nil || (info.Mode()&os.ModeCharDevice) != 0 {
			return "", nil
		}
	}
	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return "", scanner.Err()
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a Pastey API key is configured",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if strings.TrimSpace(os.Getenv(config.EnvPasteyKey)) != "" {
				_, _ = fmt.Fprintf(out, "Pastey API key set via %s.\n", config.EnvPasteyKey)
				return nil
			}
			if config.HasPasteyKey() {
				_, _ = fmt.Fprintln(out, "Pastey API key configured in the keychain.")
				return nil
			}
			_, _ = fmt.Fprintln(out, "No Pastey API key configured. Run 'popcat auth login'.")
			return nil
		}),
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored Pastey API key",
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if err := config.DeletePasteyKey(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Pastey API key removed.")
			return nil
		}),
	}
}
