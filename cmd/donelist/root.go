package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"donelist/internal/config"
	"donelist/internal/ui"
)

var version = "dev"

var errNotTerminal = errors.New("donelist needs an interactive terminal")

type rootOptions struct {
	configPath  string
	logPath     string
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "donelist",
		Short:         "A keyboard-driven todo list for the terminal",
		Long:          "donelist keeps a list of short items you can add, tick off and delete without leaving the keyboard. Items live for the session only.",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotTerminal
			}
			logger, closer, err := newLogger(cfg.LogPath, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer closer.Close()
			return ui.Run(cfg, logger)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file path (default $"+config.EnvConfigPath+" or the user config dir)")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "append JSON logs to this file")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "draw in the main screen buffer instead of the alternate screen")

	cmd.AddCommand(newKeysCmd(opts))
	return cmd
}

// load resolves and reads the config, then applies flag overrides.
func (o *rootOptions) load() (config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.ResolveConfigPath()
	}
	cfg, err := config.LoadOrCreate(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if o.logPath != "" {
		cfg.LogPath = o.logPath
	}
	if o.noAltScreen {
		cfg.AltScreen = false
	}
	return cfg, nil
}

func newKeysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return printKeys(cmd.OutOrStdout(), ui.NewKeyMap(cfg.Keys))
		},
	}
}

func printKeys(w io.Writer, keys ui.KeyMap) error {
	for _, e := range keys.Entries() {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", e.Mode, e.Action, strings.Join(e.Keys, ", ")); err != nil {
			return err
		}
	}
	return nil
}
