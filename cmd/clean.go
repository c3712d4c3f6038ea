package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicorai/nicorai/internal/config"
	"github.com/nicorai/nicorai/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the saved settings and log file",
	Long: `Deletes the config file (theme, sidebar, compact width, notifications and
custom views) and the debug log. The next start uses the built-in defaults.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	_, err = cleanFiles(os.Stdin, cmd.OutOrStdout(), []string{cfg.Path(), logger.DefaultLogPath})
	return err
}

// cleanFiles removes the files in paths that exist, after confirmation.
// Returns the number removed.
func cleanFiles(input io.Reader, out io.Writer, paths []string) (int, error) {
	var existing []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}

	if len(existing) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return 0, nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, p := range existing {
		fmt.Fprintf(out, "  - %s\n", p)
	}

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return 0, nil
		}
	}

	removed := 0
	for _, p := range existing {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("error removing %s: %w", p, err)
		}
		removed++
	}
	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
	return removed, nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
