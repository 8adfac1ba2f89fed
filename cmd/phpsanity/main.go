package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/phpsanity/phpsanity/pkg/cli"
	"github.com/phpsanity/phpsanity/pkg/controller/run"
	"github.com/phpsanity/phpsanity/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		// The report has already been written to stdout.
		if errors.Is(err, run.ErrIssuesFound) {
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("phpsanity failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &stdutil.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, &stdutil.Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}, os.Args...)
}
