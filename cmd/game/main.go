package main

import (
	"bufio"
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/loop"
)

func main() {
	logger := config.NewLogger(os.Stderr, "shooter")

	tuning, err := config.LoadTuningFromEnv()
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Fatal("failed to enable raw mode", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(ctx, reader, os.Stdout, loop.Options{Tuning: tuning, Logger: logger})

	stop()
	_ = term.Restore(fd, oldState)
	if runErr != nil {
		logger.Fatal("game error", "err", runErr)
	}
}
