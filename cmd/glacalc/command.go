package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/osse101/gla-tools/internal/domain"
)

// Command interface that all glacalc subcommands implement
type Command interface {
	Name() string
	Description() string
	Usage() string
	Run(args []string, out io.Writer) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp(out io.Writer) {
	fmt.Fprintln(out, "Uso: glacalc <comando> [argumentos...]")
	fmt.Fprintln(out, "\nComandos:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > maxLen {
			maxLen = len(cmd.Name())
		}
	}
	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Name()) + 2
		fmt.Fprintf(out, "  %s%*s%s\n", cmd.Name(), padding, "", cmd.Description())
	}
}

// usageError is returned when arguments are missing or malformed
type usageError struct {
	cmd Command
}

func (e usageError) Error() string {
	return "uso: glacalc " + e.cmd.Name() + " " + e.cmd.Usage()
}

// userMessage turns engine errors into the message printed to the user.
// Non-numeric input and out-of-range levels are reported differently.
func userMessage(err error) string {
	var ue usageError
	switch {
	case errors.As(err, &ue):
		return ue.Error()
	case errors.Is(err, domain.ErrParse):
		return MsgNotANumber
	case errors.Is(err, domain.ErrInvalidRange):
		return MsgInvalidRange
	case errors.Is(err, domain.ErrUnknownSlot):
		return MsgUnknownSlot
	case errors.Is(err, domain.ErrUnknownTier):
		return MsgUnknownTier
	case errors.Is(err, domain.ErrUnknownCrystalType):
		return MsgUnknownCrystal
	case errors.Is(err, domain.ErrInvalidInput):
		return MsgInvalidPrices
	}
	return err.Error()
}
