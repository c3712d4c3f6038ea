package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nicorai/nicorai/internal/demo"
	"github.com/nicorai/nicorai/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of nicorai",
	Long: `Generate demo recordings of nicorai for documentation and presentations.
Scenarios run against the built-in knowledge base, so recordings are repeatable.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print the frames (for testing)
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print the frames (for testing)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (defaults to the scenario's)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (defaults to the scenario's)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(out io.Writer) {
	fmt.Fprintln(out, "Available demo scenarios:")
	fmt.Fprintln(out)
	for _, s := range scenarios.All() {
		fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
	}
}

// getScenario returns a copy of the named scenario with size overrides applied
func getScenario(name string, width, height int) (*demo.Scenario, error) {
	found := scenarios.Get(name)
	if found == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'nicorai demo list' to see available scenarios", name)
	}

	scenario := *found
	if width > 0 {
		scenario.Width = width
	}
	if height > 0 {
		scenario.Height = height
	}
	return &scenario, nil
}

func executeScenario(scenario *demo.Scenario, captureAll bool) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = captureAll

	executor := demo.NewExecutor(execCfg)
	defer executor.Cleanup()
	return executor.Run(scenario)
}

// openOutput returns the output file, or w when path is empty
func openOutput(path string, w io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return w, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating output file: %w", err)
	}
	return f, f.Close, nil
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0], demoWidth, demoHeight)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario, demoCaptureAll)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	out, closeOut, err := openOutput(demoOutput, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := demo.WriteFrames(out, frames); err != nil {
		closeOut()
		return fmt.Errorf("error writing frames: %w", err)
	}
	return closeOut()
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]
	scenario, err := getScenario(scenarioName, demoWidth, demoHeight)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario, demoCaptureAll)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenarioName + ".cast"
	}
	out, closeOut, err := openOutput(outputFile, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := demo.WriteCast(out, scenario, frames, time.Now()); err != nil {
		closeOut()
		return fmt.Errorf("error writing cast: %w", err)
	}
	if err := closeOut(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play it with: asciinema play %s\n", outputFile)
	return nil
}
