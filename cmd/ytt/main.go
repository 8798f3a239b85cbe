package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/alanbriolat/ytt"
	"github.com/alanbriolat/ytt/async"
	"github.com/alanbriolat/ytt/clipboard"
)

var version = "dev"

func main() {
	// Only fills in variables that aren't already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	config := zap.NewDevelopmentConfig()
	config.Level = level
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := config.Build()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logger.Sync()
	zap.RedirectStdLog(logger)
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx = ytt.WithLogger(ctx, logger)

	env := &environment{
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clipboard: clipboard.New(),
		level:     level,
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		env.progress = os.Stderr
	}
	app := newApp(ctx, env)

	result := async.Run(func() error { return app.Run(rewriteArgs(os.Args)) })

	select {
	case err = <-result:
	case <-ctx.Done():
		stop()
		err = <-result
	}
	if code := exitCode(err); code != 0 {
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(code)
	}
}

func exitCode(err error) int {
	var exitErr cli.ExitCoder
	if err == nil {
		return 0
	} else if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	} else {
		return 1
	}
}
