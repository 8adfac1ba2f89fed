// Package flag defines command line flags shared by phpsanity commands.
package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel string
	Config   string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("PHPSANITY_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path",
			Sources:     cli.EnvVars("PHPSANITY_CONFIG"),
			Destination: &gf.Config,
		},
	}
}
