package cmd

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/nicorai/nicorai/internal/config"
)

var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List the navigable views shown in the sidebar",
	Args:  cobra.NoArgs,
	RunE:  runViews,
}

func init() {
	rootCmd.AddCommand(viewsCmd)
}

func runViews(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	printViews(cmd.OutOrStdout(), cfg.GetViews())
	return nil
}

// printViews writes one row per view: its id and title
func printViews(out io.Writer, views []config.NavView) {
	if len(views) == 0 {
		fmt.Fprintln(out, "No views configured.")
		return
	}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{v.ID, v.Title})
	}
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("ID", "TITLE").
		Rows(rows...)
	fmt.Fprintln(out, t.Render())
}
