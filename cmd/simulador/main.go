package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/matheus-soulza/simulador-enem/internal/cli"
)

func main() {
	// .env es opcional para la CLI.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
