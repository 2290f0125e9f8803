package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shandysiswandi/secureauth/internal/app"
	"github.com/shandysiswandi/secureauth/migrations"
)

// @title           Secure Auth API
// @version         1.0
// @description     Two-factor login: password, then a one-time code sent by email.
// @server          http://localhost:8080
// @securityDefinitions.apikey  BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "secureauth",
		Short:        "Secure Auth - password and emailed OTP login service",
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and message consumers",
		RunE:  runServe,
	}
}

func runServe(*cobra.Command, []string) error {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for the application to receive a termination signal
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	application.Stop(ctx) // Stop the application gracefully
	return nil
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	steps := []struct {
		use   string
		short string
		fn    func(context.Context, *sql.DB) error
	}{
		{"up", "Apply all pending migrations", migrations.Up},
		{"down", "Roll back the latest migration", migrations.Down},
		{"status", "Show migration status", migrations.Status},
	}

	for _, step := range steps {
		cmd.AddCommand(&cobra.Command{
			Use:   step.use,
			Short: step.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runMigrate(cmd, step.fn)
			},
		})
	}

	return cmd
}

func runMigrate(cmd *cobra.Command, fn func(context.Context, *sql.DB) error) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defer cfg.Close()

	db, err := migrations.Open(cfg.GetString("database.url"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := fn(cmd.Context(), db); err != nil {
		return fmt.Errorf("migrate %s: %w", cmd.Name(), err)
	}

	cmd.Println("migrate", cmd.Name(), "done")
	return nil
}
