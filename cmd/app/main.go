package main

import (
	"fmt"
	"log/slog"
	"os"

	"sorting/cmd"

	"github.com/labstack/gommon/log"
)

// @title       Package sorting API
// @version     1.0
// @description Sorts packages into standard, special or rejected by dimensions and mass.
// @BasePath    /api/v1
func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Error creating composition root: %v", err)
	}

	startWebServer(app, configs.HTTPPort, logger)
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e, err := app.CreateRouter()
	if err != nil {
		log.Fatalf("Error creating router: %v", err)
	}

	logger.Info("Starting HTTP server", "port", port)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
