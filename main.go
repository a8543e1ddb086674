package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tile-robot/internal/config"
	"tile-robot/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML settings file (defaults are used if empty)")
	logPath := flag.String("log", "", "Append debug logs to this file (the terminal belongs to the game)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	g, err := game.NewLocal(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}

// openLogger returns a debug-level text logger writing to path, or a
// logger that discards everything when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}
