// Package main is the teller-bank command line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-petr/teller-bank/pkg/configpkg"
)

// app carries the loaded configuration into the subcommands.
type app struct {
	config configpkg.Config
}

func newRootCommand(a *app) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "tellerbank",
		Short:         "In-memory retail banking ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./configs", "directory holding app.env")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		config, err := configpkg.Load(configPath)
		if err != nil {
			return fmt.Errorf("cannot load config: %w", err)
		}

		a.config = config

		return nil
	}

	rootCmd.AddCommand(serveCommand(a))

	return rootCmd
}

func main() {
	a := &app{}

	if err := newRootCommand(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
