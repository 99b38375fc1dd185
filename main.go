/*
auth-core - standalone authentication microservice

This is the entry point: it loads configuration, runs database migrations,
and starts the HTTP server.
*/
package main

import (
	"github.com/joho/godotenv"

	"github.com/madome/auth-core/config"
	"github.com/madome/auth-core/pkg"
)

func main() {
	logger := pkg.NewLogger()

	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading the .env file, falling back to process environment")
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Error("Error loading configuration", "err", err.Error())
		panic(err)
	}

	logger.Info("Configuration loaded successfully:")
	config.PrettyPrint(cfg)

	logger.Info("Running migrations...")
	if err := MigrateDB(cfg); err != nil {
		logger.Error("Error running migrations", "err", err.Error())
		panic(err)
	}
	logger.Info("Migrations completed successfully...")

	server, err := NewServer(cfg)
	if err != nil {
		logger.Error("Error initializing the server", "err", err.Error())
		panic(err)
	}

	if err := server.Start(); err != nil {
		logger.Error("Error starting the server", "err", err.Error())
		panic(err)
	}
}
