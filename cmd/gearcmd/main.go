package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mhanski/gearcmd/cmd/cli"
	"github.com/mhanski/gearcmd/pkg/version"
)

func main() {
	// Load a local .env if present; missing files are fine.
	_ = godotenv.Load()

	cli.RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")
	if err := cli.RootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with error code
		os.Exit(1)
	}
}
