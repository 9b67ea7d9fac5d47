package main

import (
	"fmt"
	"os"

	"github.com/dukerupert/hearth/internal/config"
)

// Version is set via -ldflags at build time.
var Version = "dev"

func main() {
	// HEARTH_CONFIG names a config file; otherwise hearth.yaml is optional.
	cfg, err := config.Load(os.Getenv("HEARTH_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := newCLIApp(cfg)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
