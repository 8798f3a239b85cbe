package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/alanbriolat/ytt/config"
)

func configCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name:      "config",
		Usage:     "configure ytt settings",
		ArgsUsage: "<setting> <value>",
		Description: "Settings:\n" +
			"   languages   comma separated preferred transcript languages, e.g. en,es,fr",
		Action: func(c *cli.Context) error {
			return env.setConfig(c)
		},
	}
}

func (e *environment) setConfig(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("Error: expected exactly two arguments: <setting> <value>", 1)
	}
	setting, value := c.Args().Get(0), c.Args().Get(1)
	paths, err := e.paths(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	switch strings.ToLower(setting) {
	case "languages":
		languages := config.ParseLanguages(value)
		for _, unknown := range config.UnknownLanguages(languages) {
			zap.S().Warnf("%q is not a recognised language code", unknown)
		}
		if err := config.NewStore(paths.ConfigFile).SetPreferredLanguages(languages); err != nil {
			return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
		}
		return nil
	default:
		return cli.Exit(fmt.Sprintf("Error: Unknown config setting '%s'. Only 'languages' is supported.", setting), 1)
	}
}
