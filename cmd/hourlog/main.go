package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hourlog/internal/cli"
	"hourlog/internal/config"
)

func main() {
	_ = godotenv.Load()

	// stderr console logger; the level comes from configuration below
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts, err := cli.ParseArgs(os.Args[1:])
	if flags.WroteHelp(err) {
		os.Exit(0)
	} else if err != nil {
		// go-flags already printed the parse error
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	store, err := config.OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open timesheet store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	app := cli.NewApp(store, cfg)
	if err := app.Run(context.Background(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
