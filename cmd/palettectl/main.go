package main

import (
	"os"

	"github.com/joho/godotenv"

	"palette-api/internal/ui"
)

func main() {
	// Load .env file if it exists; check-model reads the AWS settings from it
	_ = godotenv.Load()

	if err := newApp(os.Stdout).rootCmd().Execute(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}
}
