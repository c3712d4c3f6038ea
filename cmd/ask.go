package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nicorai/nicorai/internal/config"
	"github.com/nicorai/nicorai/internal/conversation"
)

var askTimeout time.Duration

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask one question and print the answer",
	Long: `Sends a single question to the assistant and prints the reply. When the
answer carries a view (a table, cards or a chart) its plain text follows the reply.`,
	Example: `  nicorai ask "what services do you offer?"
  nicorai ask show me a chart --timeout 5s`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().DurationVar(&askTimeout, "timeout", 0, "Reply timeout (defaults to the configured response timeout)")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	timeout := askTimeout
	if timeout <= 0 {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		timeout = time.Duration(cfg.GetResponseTimeout()) * time.Second
	}

	svc := conversation.NewService(conversation.NewKnowledgeBase())
	return ask(cmd.Context(), svc, strings.Join(args, " "), timeout, cmd.OutOrStdout())
}

// ask sends question through svc and writes the reply and any attached view
func ask(ctx context.Context, svc *conversation.Service, question string, timeout time.Duration, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply, err := svc.Send(ctx, question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	fmt.Fprintln(out, reply.Text)
	if reply.View != nil {
		fmt.Fprintln(out)
		fmt.Fprint(out, reply.View.PlainText())
	}
	return nil
}
