package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/gravityquest/internal/config"
	"github.com/tomz197/gravityquest/internal/loop"
	gameconfig "github.com/tomz197/gravityquest/internal/loop/config"
)

func main() {
	configPath := flag.String("config", config.GetEnv("GQ_CONFIG", ""), "YAML settings file")
	demo := flag.String("demo", config.GetEnv("GQ_DEMO", ""), "demo to start: gravity, collision or visuals")
	flag.Parse()

	settings, err := gameconfig.Resolve(*configPath, *demo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := fileLogger(config.GetEnv("GQ_LOG_FILE", ""), config.GetEnv("GQ_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(ctx, reader, os.Stdout, loop.Options{
		Settings: settings,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("game error", "err", err)
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// fileLogger opens a logger on path, or a silent one when path is empty.
func fileLogger(path, level string) (*log.Logger, func(), error) {
	if path == "" {
		return config.DiscardLogger(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return config.NewLogger(f, level, "game"), func() { _ = f.Close() }, nil
}
