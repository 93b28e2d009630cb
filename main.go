package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/barisgit/fluxstyle/cmd"
	"github.com/barisgit/fluxstyle/internal/logging"
)

var version = "0.1.0"

func main() {
	// .env may set FLUXSTYLE_CONFIG or FLUXSTYLE_WORK_DIR; it is optional.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	slog.SetDefault(logging.New(os.Stderr, os.Getenv("FLUXSTYLE_DEBUG") != ""))

	if err := cmd.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
