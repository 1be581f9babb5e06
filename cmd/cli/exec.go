package cli

import (
	"fmt"
	"strings"

	"github.com/mhanski/gearcmd/pkg/notify"
	"github.com/spf13/cobra"
)

// NewExecCommand creates the one-shot subcommand: it runs a single command
// line against a fresh session and exits non-zero when nothing handled it.
func NewExecCommand(interpProvider func() *interpreter) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line>",
		Short: "Run a single command and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interp := interpProvider()
			out := cmd.OutOrStdout()

			unsubscribe := interp.bus.Subscribe(notify.TopicChat, func(event interface{}) {
				if msg, ok := event.(notify.ChatMessage); ok {
					fmt.Fprintln(out, msg.Text)
				}
			})
			defer unsubscribe()

			line := strings.Join(args, " ")
			if !interp.handler.HandleCommand(line) {
				return fmt.Errorf("command not handled: %s", line)
			}
			return nil
		},
	}
}
