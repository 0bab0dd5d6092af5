package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"schedsim/api"
	"schedsim/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling simulator over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	v1 := app.Group("/api").Group("/v1")
	handler.Register(v1)

	log.Printf("listening on :%d", cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
