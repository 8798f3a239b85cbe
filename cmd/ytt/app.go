package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/alanbriolat/ytt"
	"github.com/alanbriolat/ytt/config"
	"github.com/alanbriolat/ytt/internal/cache"
	"github.com/alanbriolat/ytt/provider/youtube"
)

// environment is everything the commands need from outside the process.
type environment struct {
	stdout    io.Writer
	stderr    io.Writer
	progress  io.Writer
	clipboard ytt.Clipboard
	level     zap.AtomicLevel
	// upstream builds the collaborators used on a cache miss; defaults to YouTube.
	upstream func(client *http.Client) (ytt.TranscriptProvider, ytt.PageFetcher)
}

func (e *environment) newUpstream(client *http.Client) (ytt.TranscriptProvider, ytt.PageFetcher) {
	if e.upstream != nil {
		return e.upstream(client)
	}
	return youtube.New(youtube.WithHTTPClient(client)), youtube.NewPageFetcher(client)
}

func (e *environment) paths(c *cli.Context) (config.Paths, error) {
	if dir := c.String("config-dir"); dir != "" {
		return config.NewPaths(dir), nil
	}
	return config.DefaultPaths()
}

func newApp(ctx context.Context, env *environment) *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	return &cli.App{
		Name:      "ytt",
		Usage:     "fetch YouTube video transcripts",
		UsageText: "ytt [global options] <youtube_url>\nytt [global options] fetch [options] [youtube_url]\nytt [global options] config <setting> <value>",
		Version:   version,
		Writer:    env.stdout,
		ErrWriter: env.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "read configuration from, and cache transcripts in, `DIR`",
				EnvVars: []string{"YTT_CONFIG_DIR"},
			},
			&cli.StringFlag{
				Name:    "cache-backend",
				Value:   cache.BackendFile,
				Usage:   "cache storage `BACKEND` (file or bolt)",
				EnvVars: []string{"YTT_CACHE_BACKEND"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   10 * time.Second,
				Usage:   "timeout for each upstream request",
				EnvVars: []string{"YTT_TIMEOUT"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				env.level.SetLevel(zap.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			fetchCommand(ctx, env),
			configCommand(env),
		},
		HideHelpCommand: true,
		// Errors are reported by main, after the app has returned
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
