package run

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// searchFiles returns file paths passed as arguments as is.
// They aren't validated. A missing file is reported as a read error by the checker.
func (c *Controller) searchFiles(logE *logrus.Entry) ([]string, error) {
	if len(c.param.FilePaths) != 0 {
		return c.param.FilePaths, nil
	}
	return c.walkFiles(logE)
}

// walkFiles searches the root directory recursively in lexical order.
// Paths which can't be read are skipped, so a missing root yields no file.
func (c *Controller) walkFiles(logE *logrus.Entry) ([]string, error) {
	files := []string{}
	if err := afero.Walk(c.fs, c.cfg.Root, func(p string, info fs.FileInfo, e error) error {
		if e != nil {
			logE.WithField("path", p).WithError(e).Debug("skip a path")
			return nil
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), c.cfg.Extension) {
			return nil
		}
		ignored, err := c.cfg.Ignored(p)
		if err != nil {
			return fmt.Errorf("check if a file is ignored: %w", logerr.WithFields(err, logrus.Fields{
				"path": p,
			}))
		}
		if ignored {
			logE.WithField("path", p).Debug("ignore a file")
			return nil
		}
		files = append(files, p)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk a directory: %w", logerr.WithFields(err, logrus.Fields{
			"root": c.cfg.Root,
		}))
	}
	return files, nil
}
