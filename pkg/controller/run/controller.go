// Package run implements the driver of phpsanity.
// It resolves target files from command line arguments or a directory search,
// runs the heuristic checker on each file in order, reports the findings
// as text, SARIF, or YAML, and tells the caller whether any issue was found.
// Files are processed sequentially and nothing is shared between them.
package run

import (
	"github.com/phpsanity/phpsanity/pkg/config"
	"github.com/spf13/afero"
)

type Controller struct {
	fs      afero.Fs
	cfg     *config.Config
	param   *ParamRun
	printer *Printer
}

func New(fs afero.Fs, cfg *config.Config, param *ParamRun) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
		cfg.SetDefault()
	}
	return &Controller{
		fs:      fs,
		cfg:     cfg,
		param:   param,
		printer: NewPrinter(param.Stdout, param.NoColor, param.ForceColor),
	}
}
