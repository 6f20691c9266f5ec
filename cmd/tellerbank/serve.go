package main

import (
	"github.com/spf13/cobra"

	"github.com/go-petr/teller-bank/internal/httpserver"
	"github.com/go-petr/teller-bank/internal/middleware"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the teller-bank HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := middleware.GetLogger(a.config)

			server, err := httpserver.New(logger, a.config)
			if err != nil {
				return err
			}

			logger.Info().
				Str("bank_name", a.config.BankName).
				Str("bank_code", a.config.BankCode).
				Msg("TELLER BANK SERVER HAS STARTED")

			return server.Engine.Run(a.config.ServerAddress)
		},
	}
}
