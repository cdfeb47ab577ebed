package main

import (
	"github.com/joho/godotenv"
	"github.com/nikogura/search-tailor/cmd"
)

func main() {
	// Load .env if present; environment variables already set take precedence.
	_ = godotenv.Load()

	cmd.Execute()
}
