package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "housingready",
		Usage: "Case management backend for housing outreach",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env-prefix",
				Aliases: []string{"p"},
				Usage:   "Environment variable prefix; unprefixed names are used as a fallback",
				Value:   "HOUSINGREADY",
			},
		},
		Commands: []*cli.Command{
			serveCommand,
			seedCommand,
			exportCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
