package run

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# phpsanity - heuristic syntax checks for PHP files
# These settings are used only when no file is passed as an argument.
# root: app
# extension: .php
# ignore_files:
#   - pattern: ^app/vendor/
#     pattern_format: regexp
#   - pattern: app/views/*.php
#     pattern_format: glob
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
