package main

import (
	"errors"
	"net/http"

	"golden-thread/internal/database"
	"golden-thread/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// api serve
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate, optionally seed, and serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()

		a.log.Info("Starting Golden Thread API",
			zap.String("env", a.cfg.Server.Env),
			zap.String("port", a.cfg.Server.Port),
		)

		// Check database health
		a.log.Info("Database health check", zap.Any("health", a.db.Health(cmd.Context())))

		// Run migrations
		if err := database.RunMigrations(a.db.DB(), a.log); err != nil {
			a.db.Close()
			return err
		}

		if a.cfg.Seed.OnStart {
			if err := database.Seed(cmd.Context(), a.db.DB(), a.cfg.Seed, a.log); err != nil {
				a.db.Close()
				return err
			}
		}

		// Create server
		srv := server.NewServer(a.cfg, a.log, a.db.DB())

		// Create a done channel to signal when the shutdown is complete
		done := make(chan bool, 1)

		// Run graceful shutdown in a separate goroutine
		go gracefulShutdown(srv, a.log, done)

		a.log.Info("Server listening", zap.String("addr", srv.Addr))

		err = srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.Close()
			return err
		}

		// Wait for the graceful shutdown to complete
		<-done
		a.log.Info("Graceful shutdown complete")
		return nil
	},
}
