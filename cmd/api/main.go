package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/lms/internal/config"
	"github.com/yigit/lms/internal/pkg/logger"
	"github.com/yigit/lms/internal/server"
)

// @title LMS API
// @version 1.0
// @description API for a learning management system: users, courses, enrollments, assignments and grading.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	configPath := flag.String("config", config.GetEnv("LMS_CONFIG", ""), "path to the YAML config file (default configs/config.yaml, env LMS_CONFIG)")
	flag.Parse()

	srv, err := server.NewServer(context.Background(), *configPath)
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
