package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/phpsanity/phpsanity/pkg/checker"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const (
	FormatText  = "text"
	FormatSARIF = "sarif"
	FormatYAML  = "yaml"
)

type ParamRun struct {
	FilePaths []string
	Format    string
	// NoColor disables colors even if ForceColor is set.
	NoColor bool
	// ForceColor enables colors even if stdout isn't a terminal.
	ForceColor bool
	Version    string
	Stdout     io.Writer
}

// ErrIssuesFound is returned by Run when at least one file has findings.
// The report has already been written when it is returned.
var ErrIssuesFound = errors.New("syntax issues found")

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := validateFormat(c.param.Format); err != nil {
		return err
	}
	filePaths, err := c.searchFiles(logE)
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	logE.WithField("num_of_files", len(filePaths)).Debug("search target files")

	results := make([]*checker.Result, 0, len(filePaths))
	failed := false
	for _, filePath := range filePaths {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("check files: %w", err)
		}
		result := c.checkFile(logE.WithField("file", filePath), filePath)
		if !result.Clean() {
			failed = true
		}
		results = append(results, result)
	}

	if err := c.output(results, failed); err != nil {
		return err
	}
	if failed {
		return ErrIssuesFound
	}
	return nil
}

func (c *Controller) checkFile(logE *logrus.Entry, filePath string) *checker.Result {
	logE.Debug("check a file")
	result := checker.CheckFile(c.fs, filePath)
	if result.Clean() {
		return result
	}
	logE.WithField("num_of_findings", len(result.Findings)).Debug("issues are found")
	if c.param.Format == FormatText || c.param.Format == "" {
		c.printer.Result(result)
	}
	return result
}

func (c *Controller) output(results []*checker.Result, failed bool) error {
	switch c.param.Format {
	case FormatSARIF:
		return c.outputSARIF(results)
	case FormatYAML:
		return c.outputYAML(results)
	default:
		c.printer.Summary(failed)
		return nil
	}
}

func validateFormat(format string) error {
	switch format {
	case "", FormatText, FormatSARIF, FormatYAML:
		return nil
	default:
		return logerr.WithFields(errors.New("format must be text, sarif, or yaml"), logrus.Fields{ //nolint:wrapcheck
			"format": format,
		})
	}
}
