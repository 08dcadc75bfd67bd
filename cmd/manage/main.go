// Command manage runs maintenance tasks against the Educa database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/educa/internal/bootstrap"
	"github.com/yigit/educa/internal/config"
	"github.com/yigit/educa/internal/db"
	"github.com/yigit/educa/internal/pkg/logger"
	"github.com/yigit/educa/internal/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("manage command failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "manage",
		Usage: "Educa maintenance commands",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   bootstrap.DefaultConfigPath,
				Usage:   "path to the YAML config file",
				EnvVars: []string{"EDUCA_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "apply pending SQL migrations",
				Action: migrateAction,
			},
			{
				Name:   "seed",
				Usage:  "create the default subjects and the configured admin user",
				Action: seedAction,
			},
			{
				Name:  "createsuperuser",
				Usage: "create a staff account that can use the admin API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true, EnvVars: []string{"EDUCA_SUPERUSER_USERNAME"}},
					&cli.StringFlag{Name: "email", EnvVars: []string{"EDUCA_SUPERUSER_EMAIL"}},
					&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"EDUCA_SUPERUSER_PASSWORD"}},
				},
				Action: createSuperuserAction,
			},
		},
	}
}

// withDatabase loads the config, connects and hands the pool to fn.
func withDatabase(c *cli.Context, fn func(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error) error {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}

	database, err := bootstrap.ConnectDatabase(cfg, lgr)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(cfg, database, lgr)
}

func migrateAction(c *cli.Context) error {
	return withDatabase(c, func(_ *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
		return bootstrap.RunMigrations(c.Context, database.Pool, lgr)
	})
}

func seedAction(c *cli.Context) error {
	return withDatabase(c, func(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
		deps, err := bootstrap.BuildDependencies(cfg, database.Pool, lgr)
		if err != nil {
			return err
		}
		return seed.CreateDefaultData(c.Context, deps.Services.SubjectService, deps.Services.AuthService, seed.Admin{
			Username: cfg.Seed.AdminUsername,
			Email:    cfg.Seed.AdminEmail,
			Password: cfg.Seed.AdminPassword,
		}, lgr)
	})
}

func createSuperuserAction(c *cli.Context) error {
	return withDatabase(c, func(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
		deps, err := bootstrap.BuildDependencies(cfg, database.Pool, lgr)
		if err != nil {
			return err
		}
		user, err := deps.Services.AuthService.CreateUser(c.Context, c.String("username"), c.String("email"), c.String("password"), true)
		if err != nil {
			return fmt.Errorf("create superuser: %w", err)
		}
		lgr.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("Superuser created")
		return nil
	})
}
