// Package main provides the CLI entrypoint for waykey.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waykey/waykey/internal/config"
	"github.com/waykey/waykey/internal/display"
	"github.com/waykey/waykey/internal/menu"
	"github.com/waykey/waykey/internal/session"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var (
	logger     *slog.Logger
	globalOpts struct {
		verbose     bool
		initialKeys string
	}
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "waykey [config]",
	Short: "Keymap menu popup for Wayland compositors",
	Long: `waykey displays a which-key style keymap menu as a layer-shell popup.

The optional argument names a configuration under ~/.config/waykey;
"waykey print-screen" loads ~/.config/waykey/print-screen.yaml. An
absolute path can be used too, extension is optional. Without an
argument the default "config" is loaded.`,
	Args:    cobra.MaximumNArgs(1),
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
	RunE: runMenu,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.Flags().StringVarP(&globalOpts.initialKeys, "initial-keys", "k", "",
		"Key sequence to navigate on startup, keys separated by spaces (e.g. \"p s\")")
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	nav := menu.NewNav(menu.NewTree(cfg.MenuPage()))

	// An initial sequence ending in a command never creates a surface:
	// the command is spawned and waykey exits without any popup flash.
	if globalOpts.initialKeys != "" {
		tokens := strings.Fields(globalOpts.initialKeys)
		action, err := nav.NavigateSequence(tokens)
		if err != nil {
			return err
		}
		switch action := action.(type) {
		case menu.Quit:
			return nil
		case menu.Exec:
			if action.KeepOpen {
				return fmt.Errorf("initial key sequence cannot trigger an action with keep_open=true")
			}
			return session.DetachedSpawner{}.Spawn(action.Cmd)
		case menu.Submenu:
			nav.Enter(action.Page)
		}
	}

	return display.New(cfg, nav, logger).Run()
}

// loadConfig resolves the optional positional config name.
func loadConfig(args []string) (*config.Config, error) {
	name := "config"
	if len(args) == 1 {
		name = args[0]
	}
	return config.Load(name)
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
