package commands

import (
	"strings"

	"github.com/mhanski/gearcmd/pkg/events"
	"github.com/mhanski/gearcmd/pkg/logging"
)

// Event bus topics the dispatcher participates in.
const (
	// TopicUserCommand carries raw command lines from the host input loop.
	TopicUserCommand = "user.input.command"
	// TopicCommandExecuted is emitted after a verb handler succeeds.
	TopicCommandExecuted = "command.executed"
)

// ExecutedEvent is the payload published on TopicCommandExecuted.
type ExecutedEvent struct {
	Command string
	Args    []string
}

// CommandHandler is the dispatcher: it tokenizes a raw command line,
// offers the pre-dispatch hook, and routes the verb to its handler.
type CommandHandler struct {
	registry *CommandRegistry
	ctx      *Context
	bus      *events.CommandEventBus
	logger   logging.Logger
}

// NewCommandHandler wires the dispatcher to the registry and, when a bus
// is given, subscribes it to the user command topic.
func NewCommandHandler(ctx *Context, registry *CommandRegistry, bus *events.CommandEventBus) *CommandHandler {
	logger := ctx.Logger
	if logger == nil {
		logger = logging.NewDisabledLogger()
	}

	handler := &CommandHandler{
		registry: registry,
		ctx:      ctx,
		bus:      bus,
		logger:   logger,
	}

	if bus != nil {
		bus.Subscribe(TopicUserCommand, func(event interface{}) {
			if line, ok := event.(string); ok {
				handler.HandleCommand(line)
			}
		})
	}

	return handler
}

// HandleCommand processes one raw command line to completion. It returns
// true when a handler (or the pre-dispatch hook) handled the command, and
// false for empty input, unknown verbs, or validation failures. Failures
// are silent apart from debug diagnostics.
func (h *CommandHandler) HandleCommand(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}

	if h.ctx.Hooks.PreDispatch != nil && h.ctx.Hooks.PreDispatch(tokens) {
		return true
	}

	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	cmd := h.registry.GetCommand(verb)
	if cmd == nil {
		// Unknown verbs fall through silently; the host may route them
		// elsewhere.
		h.logger.Debug("no handler for verb", "verb", verb)
		return false
	}

	if err := cmd.Execute(args); err != nil {
		h.logger.Debug("command not handled", "verb", verb, "error", err)
		return false
	}

	if h.bus != nil {
		h.bus.Emit(TopicCommandExecuted, ExecutedEvent{Command: verb, Args: args})
	}
	return true
}

// Registry returns the command registry backing this dispatcher.
func (h *CommandHandler) Registry() *CommandRegistry {
	return h.registry
}
