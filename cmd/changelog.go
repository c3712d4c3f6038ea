package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/nicorai/nicorai/internal/changelog"
)

var (
	changelogSince string
	changelogPlain bool
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show release notes",
	Example: `  nicorai changelog
  nicorai changelog --since v0.2.0`,
	Args: cobra.NoArgs,
	RunE: runChangelog,
}

func init() {
	changelogCmd.Flags().StringVar(&changelogSince, "since", "", "Only show versions newer than this one")
	changelogCmd.Flags().BoolVar(&changelogPlain, "plain", false, "Print markdown without styling")
	rootCmd.AddCommand(changelogCmd)
}

func runChangelog(cmd *cobra.Command, args []string) error {
	return printChangelog(cmd.OutOrStdout(), changelog.Entries(), changelogSince, changelogPlain)
}

// printChangelog writes the entries newer than since, styled unless plain
func printChangelog(out io.Writer, entries []changelog.Entry, since string, plain bool) error {
	entries = changelog.Since(since, entries)
	if len(entries) == 0 {
		fmt.Fprintf(out, "No changes since %s.\n", since)
		return nil
	}

	md := changelog.Markdown(entries)
	if plain {
		_, err := fmt.Fprint(out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("error creating renderer: %w", err)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("error rendering changelog: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
