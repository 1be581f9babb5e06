package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mhanski/gearcmd/pkg/notify"
	"github.com/spf13/cobra"
)

// runREPL reads command lines from stdin until EOF or an exit command,
// dispatching each through the interpreter and printing chat notifications
// as they arrive on the bus.
func runREPL(cmd *cobra.Command, interp *interpreter) error {
	out := cmd.OutOrStdout()

	unsubscribe := interp.bus.Subscribe(notify.TopicChat, func(event interface{}) {
		if msg, ok := event.(notify.ChatMessage); ok {
			fmt.Fprintln(out, msg.Text)
		}
	})
	defer unsubscribe()

	fmt.Fprintln(out, "gearcmd - type 'help' for commands, 'quit' to leave")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}
		interp.handler.HandleCommand(line)
	}
	return scanner.Err()
}
