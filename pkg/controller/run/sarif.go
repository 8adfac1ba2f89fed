package run

import (
	"encoding/json"
	"fmt"

	"github.com/phpsanity/phpsanity/pkg/checker"
	"github.com/phpsanity/phpsanity/pkg/sarif"
)

// outputSARIF outputs findings in SARIF format to stdout.
func (c *Controller) outputSARIF(results []*checker.Result) error {
	log := sarif.Log{
		Schema:  sarif.Schema,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:    "phpsanity",
						Version: c.param.Version,
						Rules:   buildSARIFRules(),
					},
				},
				Results: buildSARIFResults(results),
			},
		},
	}

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFRules() []sarif.Rule {
	infos := checker.Rules()
	rules := make([]sarif.Rule, 0, len(infos))
	for _, info := range infos {
		rules = append(rules, sarif.Rule{
			ID:               string(info.ID),
			ShortDescription: sarif.Message{Text: info.Description},
		})
	}
	return rules
}

func buildSARIFResults(results []*checker.Result) []sarif.Result {
	ret := []sarif.Result{}
	for _, result := range results {
		for _, f := range result.Findings {
			level := "warning"
			if f.Rule == checker.RuleReadError {
				level = "error"
			}
			loc := sarif.PhysicalLocation{
				ArtifactLocation: sarif.ArtifactLocation{
					URI: f.File,
				},
			}
			if f.Line > 0 {
				loc.Region = &sarif.Region{StartLine: f.Line}
			}
			ret = append(ret, sarif.Result{
				RuleID:    string(f.Rule),
				Level:     level,
				Message:   sarif.Message{Text: f.Message},
				Locations: []sarif.Location{{PhysicalLocation: loc}},
			})
		}
	}
	return ret
}
