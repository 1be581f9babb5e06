package commands

import (
	"sort"
	"strings"
)

// CommandRegistry manages command registration and lookup by name or alias.
type CommandRegistry struct {
	commands       map[string]Command
	aliasToCommand map[string]Command
}

// NewCommandRegistry creates an empty registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands:       make(map[string]Command),
		aliasToCommand: make(map[string]Command),
	}
}

// Register adds a command under its name and all of its aliases.
func (r *CommandRegistry) Register(cmd Command) {
	r.commands[strings.ToLower(cmd.GetName())] = cmd
	for _, alias := range cmd.GetAliases() {
		r.aliasToCommand[strings.ToLower(alias)] = cmd
	}
}

// GetCommand returns the command registered under name or alias, or nil.
func (r *CommandRegistry) GetCommand(name string) Command {
	name = strings.ToLower(name)
	if cmd, ok := r.commands[name]; ok {
		return cmd
	}
	return r.aliasToCommand[name]
}

// GetAllCommands returns all registered commands sorted by name.
func (r *CommandRegistry) GetAllCommands() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].GetName() < cmds[j].GetName()
	})
	return cmds
}

// GetCommandNames returns the registered verb names sorted alphabetically.
func (r *CommandRegistry) GetCommandNames() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDefaultRegistry builds a registry with every built-in verb wired to
// the given context.
func NewDefaultRegistry(ctx *Context) *CommandRegistry {
	registry := NewCommandRegistry()
	registry.Register(NewToggleCommand(ctx))
	registry.Register(NewActivateCommand(ctx))
	registry.Register(NewCycleCommand(ctx))
	registry.Register(NewSetCommand(ctx))
	registry.Register(NewResetCommand(ctx))
	registry.Register(NewUpdateCommand(ctx))
	registry.Register(NewShowSetCommand(ctx))
	registry.Register(NewNakedCommand(ctx))
	registry.Register(NewStatusCommand(ctx))
	registry.Register(NewTestCommand(ctx))
	registry.Register(NewHelpCommand(ctx, registry))
	return registry
}
