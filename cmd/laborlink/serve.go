package main

import (
	"fmt"

	"github.com/jonathan/laborlink/internal/config"
	"github.com/jonathan/laborlink/internal/server"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the marketplace REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	appConfig, err := config.NewAppConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		appConfig.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:        appConfig.Port,
		DatabaseURL: appConfig.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
