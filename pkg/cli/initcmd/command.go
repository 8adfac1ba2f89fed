// Package initcmd implements the 'phpsanity init' command.
// It writes a commented configuration template which documents
// the search root, the file extension, and patterns of ignored files.
package initcmd

import (
	"context"

	"github.com/phpsanity/phpsanity/pkg/cli/flag"
	"github.com/phpsanity/phpsanity/pkg/controller/run"
	"github.com/phpsanity/phpsanity/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const defaultConfigFilePath = ".phpsanity.yaml"

// New creates the init command.
func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .phpsanity.yaml if it doesn't exist",
		Description: `Create .phpsanity.yaml if it doesn't exist

$ phpsanity init

You can also pass configuration file path.

e.g.

$ phpsanity init .github/phpsanity.yaml
`,
		Action: r.action,
	}
}

// action resolves the configuration file path from the argument, the --config flag,
// or the default path in this order, and creates the file.
func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = defaultConfigFilePath
	}
	ctrl := run.New(afero.NewOsFs(), nil, &run.ParamRun{})
	r.logE.WithField("config", configFilePath).Debug("create a configuration file")
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
