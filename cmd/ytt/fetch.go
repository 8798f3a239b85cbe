package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/alanbriolat/ytt"
	"github.com/alanbriolat/ytt/async"
	"github.com/alanbriolat/ytt/config"
	"github.com/alanbriolat/ytt/generic"
	"github.com/alanbriolat/ytt/internal/cache"
	"github.com/alanbriolat/ytt/repository"
)

const noLanguagesMessage = `Error: Preferred languages not set in configuration.
Please set them using: ytt config languages <lang1>,<lang2>,...
Example: ytt config languages en,es,fr`

func fetchCommand(ctx context.Context, env *environment) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "fetch the transcript for a video (default command)",
		ArgsUsage: "[youtube_url]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "no-copy", Usage: "do not copy the output to the clipboard"},
			&cli.BoolFlag{Name: "no-title", Usage: "omit the video title"},
			&cli.BoolFlag{Name: "no-description", Usage: "omit the video description"},
			&cli.BoolFlag{Name: "no-metadata", Usage: "omit the title and description"},
			&cli.BoolFlag{Name: "no-url", Usage: "omit the video URL"},
			&cli.BoolFlag{Name: "refresh", Usage: "ignore any cached transcript"},
		},
		Action: func(c *cli.Context) error {
			return env.fetch(ctx, c)
		},
	}
}

func (e *environment) fetch(ctx context.Context, c *cli.Context) error {
	log := ytt.Logger(ctx).Sugar().Named("fetch")

	id, err := e.resolveInput(c.Args().First())
	if err != nil {
		return err
	}

	paths, err := e.paths(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	languages, err := config.NewStore(paths.ConfigFile).PreferredLanguages()
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	} else if len(languages) == 0 {
		return cli.Exit(noLanguagesMessage, 1)
	}

	store, err := cache.Open(c.String("cache-backend"), paths.CacheDir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	defer store.Close()

	timeout := c.Duration("timeout")
	transcripts, pages := e.newUpstream(&http.Client{})
	repo := repository.New(store, transcripts, pages, repository.WithTimeout(timeout))

	log.Debugf("fetching %v with languages %v", id, languages)
	result := e.withSpinner(fmt.Sprintf("fetching %v", id), async.RunResult(func() (ytt.Bundle, error) {
		return repo.Retrieve(ctx, id, languages, c.Bool("refresh"))
	}))
	if result.IsErr() {
		return cli.Exit(fmt.Sprintf("Error: %v", result.Error), 1)
	}

	opts := ytt.DefaultRenderOptions(id)
	opts.ShowTitle = !(c.Bool("no-title") || c.Bool("no-metadata"))
	opts.ShowDescription = !(c.Bool("no-description") || c.Bool("no-metadata"))
	opts.ShowURL = !c.Bool("no-url")
	text, err := ytt.Render(result.Value, opts)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	fmt.Fprintln(e.stdout, text)

	if !c.Bool("no-copy") {
		if err := e.clipboard.Copy(text); err != nil {
			log.Warnf("could not copy to clipboard: %v", err)
		}
	}
	return nil
}

// resolveInput resolves the video ID from the command line argument, or from the clipboard if there isn't one.
func (e *environment) resolveInput(input string) (ytt.VideoID, error) {
	if input != "" {
		if id, err := ytt.Resolve(input); err != nil {
			return ytt.VideoID{}, cli.Exit(fmt.Sprintf("Error: Could not extract video ID from URL: %s", input), 1)
		} else {
			return id, nil
		}
	}

	text, err := e.clipboard.Read()
	if err != nil {
		return ytt.VideoID{}, cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	} else if strings.TrimSpace(text) == "" {
		return ytt.VideoID{}, cli.Exit("Error: Clipboard is empty", 1)
	}
	if id, err := ytt.Resolve(text); err != nil {
		return ytt.VideoID{}, cli.Exit("Error: No YouTube URL found in clipboard", 1)
	} else {
		return id, nil
	}
}

// withSpinner waits for result, showing a spinner on the progress writer (if any) in the meantime.
func (e *environment) withSpinner(description string, result <-chan generic.Result[ytt.Bundle]) generic.Result[ytt.Bundle] {
	if e.progress == nil {
		return <-result
	}
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(e.progress),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case r := <-result:
			_ = bar.Finish()
			return r
		case <-ticker.C:
			_ = bar.Add(1)
		}
	}
}
