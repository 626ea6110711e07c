package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/rcliao/learning-journal/internal/cli"
)

func main() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
