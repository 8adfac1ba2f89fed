// Package checker implements heuristic syntax sanity checks for PHP source files.
// It isn't a parser. Each heuristic counts characters or matches simple patterns
// line by line, so it both over-reports and under-reports on real code.
// The heuristics are pure functions over text and can be tested without a filesystem.
package checker

import (
	"strings"

	"github.com/spf13/afero"
)

// CheckFile reads a file and runs all heuristics over its content.
// If the file can't be read, the result has a single read-error finding
// and no heuristic runs.
func CheckFile(fs afero.Fs, path string) *Result {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return &Result{
			File: path,
			Findings: []*Finding{
				{
					File:    path,
					Rule:    RuleReadError,
					Message: "Error reading file: " + err.Error(),
				},
			},
		}
	}
	return Check(path, string(b))
}

// Check runs the brace, parenthesis, and semicolon heuristics in that order.
func Check(file, content string) *Result {
	lines := splitLines(content)
	findings := CheckBraces(content)
	findings = append(findings, CheckParentheses(lines)...)
	findings = append(findings, CheckSemicolons(lines)...)
	for _, f := range findings {
		f.File = file
	}
	return &Result{
		File:     file,
		Findings: findings,
	}
}

// splitLines splits on "\n" only, so "\r" stays in the line
// and a trailing newline yields a final empty line.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
