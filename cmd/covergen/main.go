package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A local .env may provide OPENAI_API_KEY and CONTACT_* values.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
