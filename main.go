package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/arcanaland/cardpack/cmd"
)

func main() {
	// Optional .env with CARDPACK_CATALOG / CARDPACK_LANG / XDG overrides.
	_ = godotenv.Load()

	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
