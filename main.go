// Package main is the entry point for the seedgen CLI application.
// It generates SQL seed scripts for a recruitment application from
// minimal form input using the Gemini API.
package main

import (
	"seedgen/cli/cmd"

	"github.com/joho/godotenv"
)

// main is the entry point for the seedgen CLI application.
// A .env file in the working directory is loaded first so that
// GEMINI_API_KEY can be supplied without exporting it.
func main() {
	_ = godotenv.Load()
	cmd.Execute()
}
