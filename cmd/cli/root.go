// Package cli wires the command interpreter into a cobra-based terminal
// host: an interactive loop by default, plus a one-shot exec subcommand.
package cli

import (
	"fmt"

	"github.com/mhanski/gearcmd/pkg/commands"
	"github.com/mhanski/gearcmd/pkg/config"
	"github.com/mhanski/gearcmd/pkg/equipment"
	"github.com/mhanski/gearcmd/pkg/events"
	"github.com/mhanski/gearcmd/pkg/logging"
	"github.com/mhanski/gearcmd/pkg/notify"
	"github.com/mhanski/gearcmd/pkg/state"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	modesFile string
	verbose   bool
	quiet     bool

	// Interpreter instance - initialized once and reused
	interp *interpreter
)

// interpreter bundles the wired core for the CLI host.
type interpreter struct {
	bus     *events.CommandEventBus
	handler *commands.CommandHandler
	ctx     *commands.Context
	logger  logging.Logger
}

// debugRenderer stands in for a game attachment: renders are visible at
// debug level and nowhere else.
type debugRenderer struct {
	logger logging.Logger
}

func (r debugRenderer) RenderEquipment(trigger string) {
	r.logger.Debug("rendering equipment", "trigger", trigger)
}

func (r debugRenderer) SetSlotsEnabled(slots ...equipment.Slot) {
	r.logger.Debug("enabling slots", "count", len(slots))
}

func (r debugRenderer) ApplyEquipmentSet(set equipment.Set) {
	r.logger.Debug("applying equipment set", "pieces", len(set))
}

func newInterpreter(logger logging.Logger, modesPath string) (*interpreter, error) {
	registry, err := config.LoadRegistry(modesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load mode registry: %w", err)
	}

	s := state.New(registry)
	bus := events.NewCommandEventBus()
	ctx := &commands.Context{
		State:    s,
		Resolver: state.NewResolver(s, registry),
		Notifier: notify.NewBusNotifier(bus),
		Renderer: debugRenderer{logger: logger},
		Status:   equipment.StaticStatusProvider{Status: "Idle"},
		Logger:   logger,
	}
	handler := commands.NewCommandHandler(ctx, commands.NewDefaultRegistry(ctx), bus)

	return &interpreter{
		bus:     bus,
		handler: handler,
		ctx:     ctx,
		logger:  logger,
	}, nil
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "gearcmd",
	Short:   "Combat state command interpreter",
	Long:    `gearcmd interprets combat configuration commands (toggle, cycle, set, ...) against a mode-driven equipment state.`,
	Version: "dev",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewManager()

		var logger logging.Logger
		switch {
		case quiet:
			logger = logging.NewQuietLogger()
		case verbose || cfg.GetBoolWithDefault("GEARCMD_DEBUG", false):
			logger = logging.NewVerboseLogger()
		default:
			logger = logging.NewDefaultLogger()
		}

		path := modesFile
		if path == "" {
			path = cfg.GetStringWithDefault("GEARCMD_MODES_FILE", "")
		}

		var err error
		interp, err = newInterpreter(logger, path)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd, interp)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&modesFile, "modes", "", "path to a mode registry override file")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")

	addCommands()
}

// addCommands adds all CLI subcommands to the root command
func addCommands() {
	RootCmd.AddCommand(NewExecCommand(func() *interpreter {
		return interp
	}))
}
