package run

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/phpsanity/phpsanity/pkg/checker"
)

type yamlReport struct {
	Checked int         `yaml:"checked"`
	Files   []*yamlFile `yaml:"files"`
}

type yamlFile struct {
	Path     string         `yaml:"path"`
	Findings []*yamlFinding `yaml:"findings"`
}

type yamlFinding struct {
	Rule    string `yaml:"rule"`
	Line    int    `yaml:"line,omitempty"`
	Message string `yaml:"message"`
}

// outputYAML outputs files with findings in YAML format to stdout.
func (c *Controller) outputYAML(results []*checker.Result) error {
	report := &yamlReport{
		Checked: len(results),
		Files:   []*yamlFile{},
	}
	for _, result := range results {
		if result.Clean() {
			continue
		}
		file := &yamlFile{
			Path:     result.File,
			Findings: make([]*yamlFinding, 0, len(result.Findings)),
		}
		for _, f := range result.Findings {
			file.Findings = append(file.Findings, &yamlFinding{
				Rule:    string(f.Rule),
				Line:    f.Line,
				Message: f.Message,
			})
		}
		report.Files = append(report.Files, file)
	}
	b, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode a report as YAML: %w", err)
	}
	if _, err := c.param.Stdout.Write(b); err != nil {
		return fmt.Errorf("write a report: %w", err)
	}
	return nil
}
