package main

import (
	"flag"
	"os"

	"github.com/yigit/educa/internal/bootstrap"
	"github.com/yigit/educa/internal/pkg/logger"
	"github.com/yigit/educa/internal/server"
)

// @title Educa API
// @version 1.0
// @description Course catalog administration API: subjects, courses, modules and their polymorphic content.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization, as "Bearer <token>"

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
