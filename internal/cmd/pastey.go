package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	popcat "github.com/popcat/popcat-go"
	"github.com/popcat/popcat-go/internal/outfmt"
)

// newPasteyCmd returns the pastey command group.
func newPasteyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pastey",
		Short: "Create code pastes on code.popcat.xyz",
	}

	cmd.AddCommand(newPasteyCreateCmd())
	cmd.AddCommand(newPasteyThemesCmd())
	cmd.AddCommand(newPasteyLanguagesCmd())

	return cmd
}

func newPasteyCreateCmd() *cobra.Command {
	var (
		description string
		file        string
		theme       string
		language    string
	)

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a paste",
		Long:  "Create a syntax-highlighted paste. Reads the code from --file, or from stdin when --file is '-' or omitted.",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			code, err := readPasteSource(cmd, file)
			if err != nil {
				return err
			}
			if code == "" {
				return fmt.Errorf("paste content is empty")
			}

			client, err := newClient(true)
			if err != nil {
				return err
			}
			result, err := client.Pastey().CreatePaste(cmd.Context(), args[0], description, code, theme, language)
			if err != nil {
				return err
			}
			return printObject(cmd, result)
		}),
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Paste description")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File to paste ('-' for stdin)")
	cmd.Flags().StringVar(&theme, "theme", "", "Highlighting theme (default "+popcat.DefaultPasteTheme+")")
	cmd.Flags().StringVar(&language, "language", "", "Language (default "+popcat.DefaultPasteLanguage+")")
	return cmd
}

func readPasteSource(cmd *cobra.Command, file string) (string, error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read paste from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read --file %q: %w", file, err)
	}
	return string(data), nil
}

func newPasteyThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List accepted highlighting themes",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			return printNameList(cmd, popcat.New().Pastey().Themes())
		}),
	}
}

func newPasteyLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List accepted languages",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			return printNameList(cmd, popcat.New().Pastey().Languages())
		}),
	}
}

func printNameList(cmd *cobra.Command, names []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if outfmt.IsJSON(ctx) {
		return outfmt.WriteJSONFiltered(out, names, outfmt.GetQuery(ctx), outfmt.IsJSONL(ctx))
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	return nil
}
