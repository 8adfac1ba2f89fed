// Package di provides dependency injection for the phpsanity CLI.
// It creates and wires together all the dependencies needed to run the phpsanity commands.
package di

import (
	"context"
	"fmt"
	"io"

	"github.com/phpsanity/phpsanity/pkg/config"
	"github.com/phpsanity/phpsanity/pkg/controller/run"
	"github.com/phpsanity/phpsanity/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Run checks target files and writes the report to stdout.
// It returns run.ErrIssuesFound if any file has findings.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, stdout io.Writer) error {
	log.SetLevel(flags.LogLevel, logE)

	fs := afero.NewOsFs()
	cfg, err := readConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	ctrl := run.New(fs, cfg, newParamRun(flags, stdout))
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// newParamRun forces colors on GitHub Actions, where stdout isn't a terminal but logs render ANSI colors.
func newParamRun(flags *Flags, stdout io.Writer) *run.ParamRun {
	return &run.ParamRun{
		FilePaths:  flags.Args,
		Format:     flags.Format,
		NoColor:    flags.NoColor,
		ForceColor: flags.IsGitHubActions && !flags.NoColor,
		Version:    flags.Version,
		Stdout:     stdout,
	}
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}
