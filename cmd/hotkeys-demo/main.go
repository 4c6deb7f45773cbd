package main

import (
	_ "embed"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tuikeys/hotkeys"
	"github.com/tuikeys/hotkeys/config"
)

//go:embed default.toml
var defaultBindings []byte

var (
	configPath string
	verbose    bool

	rootCmd = &cobra.Command{
		Use:   "hotkeys-demo",
		Short: "Interactive demo of declarative hotkey composition",
		Long: `Runs a small log console whose keyboard shortcuts are declared as an
action-to-key map and picked up automatically after the view mounts. Pass
--config to overlay your own bindings over the shipped defaults.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	logrus.SetOutput(os.Stderr)

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Key-binding file (.toml, .yaml) overlaid on the defaults")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Parse(".toml", defaultBindings)
	if err != nil {
		return fmt.Errorf("embedded default bindings: %w", err)
	}
	if configPath != "" {
		user, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = config.Merge(cfg, user)
		logrus.WithField("path", configPath).Debug("merged user bindings")
	}

	keyMap := cfg.KeyMap()
	logrus.WithField("actions", len(keyMap)).Debug("key map loaded")

	compose := hotkeys.Compose(newChordDispatcher, keyMap, cfg.Props())
	app := compose(newDemo(keyMap, cfg.Descriptions()))

	program := tea.NewProgram(hotkeys.Model(app), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
