package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"elementquiz/internal/app"
	"elementquiz/internal/devtools"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	// flags holds raw flag values; resolved is env + flags after Validate.
	flags    app.Config
	envFile  string
	resolved app.Config
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

func newRootCmdWith(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "elementquiz",
		Short:         "Flash cards and a short quiz on chemical elements",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := app.LoadConfig(opts.envFile)
			if err != nil {
				return err
			}
			applyFlags(cmd, &loaded, opts.flags)
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			opts.resolved = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(opts.resolved)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(ctx)
		},
	}

	defaults := app.DefaultConfig()
	cfg := &opts.flags
	f := cmd.Flags()
	f.StringVar(&cfg.LogPath, "log-path", "", "write JSON event log to this file")
	f.BoolVar(&cfg.ASCIIOnly, "ascii", false, "draw borders with ASCII characters only")
	f.BoolVar(&cfg.DebugLayout, "debug-layout", false, "show terminal size and layout in the status bar")
	f.StringVar(&cfg.UI.StyleVariant, "style", defaults.UI.StyleVariant, "theme: modern_arcade, cozy_clean or retro_terminal")
	f.StringVar(&cfg.UI.MotionLevel, "motion", defaults.UI.MotionLevel, "animation level: full, reduced or off")
	f.Int64Var(&cfg.Seed, "seed", 0, "seed for the quiz order (0 picks a random order)")
	f.StringVar(&cfg.DemoScenario, "demo", "", "start in a named demo scenario: "+strings.Join(devtools.NewManager().Names(), ", "))
	f.StringVar(&cfg.CatalogPath, "catalog", "", "element catalog YAML to use instead of the built-in one")
	f.StringVar(&opts.envFile, "env-file", "", "read ELEMENTQUIZ_* settings from this dotenv file")
	return cmd
}

// applyFlags copies only the flags the user set, so environment values
// survive unless a flag overrides them.
func applyFlags(cmd *cobra.Command, dst *app.Config, flags app.Config) {
	f := cmd.Flags()
	if f.Changed("log-path") {
		dst.LogPath = flags.LogPath
	}
	if f.Changed("ascii") {
		dst.ASCIIOnly = flags.ASCIIOnly
	}
	if f.Changed("debug-layout") {
		dst.DebugLayout = flags.DebugLayout
	}
	if f.Changed("style") {
		dst.UI.StyleVariant = flags.UI.StyleVariant
	}
	if f.Changed("motion") {
		dst.UI.MotionLevel = flags.UI.MotionLevel
	}
	if f.Changed("seed") {
		dst.Seed = flags.Seed
	}
	if f.Changed("demo") {
		dst.DemoScenario = flags.DemoScenario
	}
	if f.Changed("catalog") {
		dst.CatalogPath = flags.CatalogPath
	}
}
