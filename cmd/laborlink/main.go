// Package main provides the entry point for the LaborLink HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "laborlink",
	Short: "LaborLink job marketplace server",
	Long:  "LaborLink matches daily-wage workers with supervisor job postings, enforcing weekly hour safety caps and minimum-wage compliance via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
