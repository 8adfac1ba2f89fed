// Package cli defines the command line interface of phpsanity.
package cli

import (
	"context"

	"github.com/phpsanity/phpsanity/pkg/cli/flag"
	"github.com/phpsanity/phpsanity/pkg/cli/initcmd"
	"github.com/phpsanity/phpsanity/pkg/di"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

const description = `Run heuristic syntax checks on PHP files.

If no argument is passed, phpsanity searches .php files in the app directory recursively.

$ phpsanity

You can also pass file paths as arguments.

e.g.

$ phpsanity app/Controller/UserController.php app/Model/User.php

Three checks are run on each file:

- the numbers of "{" and "}" are equal
- parentheses in function definitions are balanced
- return statements end with ";"

They count characters line by line and don't parse PHP,
so braces in strings and comments are counted too.

phpsanity exits with 1 if any issue is found.
`

// Run builds the root command and runs it with args.
// It returns run.ErrIssuesFound as is when any file has findings.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, env *stdutil.Env, args ...string) error {
	flags := &di.Flags{
		GlobalFlags: &flag.GlobalFlags{},
		Version:     ldFlags.Version,
	}
	cmd := urfave.Command(displayLDFlags(ldFlags), &cli.Command{
		Name:        "phpsanity",
		Usage:       "Heuristic syntax checks for PHP files",
		Description: description,
		Writer:      env.Stdout,
		ErrWriter:   env.Stderr,
		Flags: append(flags.GlobalFlags.Flags(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format. One of text, sarif, and yaml",
				Value:       "text",
				Destination: &flags.Format,
			},
			&cli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &flags.NoColor,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			flags.Args = c.Args().Slice()
			di.SetEnv(flags, env.Getenv)
			return di.Run(ctx, logE, flags, env.Stdout) //nolint:wrapcheck
		},
		Commands: []*cli.Command{
			initcmd.New(logE, flags.GlobalFlags),
		},
	})
	return cmd.Run(ctx, args) //nolint:wrapcheck
}

// displayLDFlags appends the commit to the version shown by --version and the version command.
func displayLDFlags(ldFlags *stdutil.LDFlags) *stdutil.LDFlags {
	if ldFlags.Commit == "" {
		return ldFlags
	}
	return &stdutil.LDFlags{
		Version: ldFlags.Version + " (" + ldFlags.Commit + ")",
		Commit:  ldFlags.Commit,
		Date:    ldFlags.Date,
	}
}
