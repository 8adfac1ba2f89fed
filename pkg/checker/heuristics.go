package checker

import (
	"fmt"
	"regexp"
	"strings"
)

// CheckBraces compares the raw counts of "{" and "}" in the whole content.
// Braces in comments and string literals are counted too.
func CheckBraces(content string) []*Finding {
	opening := strings.Count(content, "{")
	closing := strings.Count(content, "}")
	if opening == closing {
		return nil
	}
	return []*Finding{
		{
			Rule:    RuleBraceMismatch,
			Message: fmt.Sprintf("Brace mismatch: %d opening, %d closing", opening, closing),
		},
	}
}

// functionPattern treats vertical tabs, information separators, NEL, and Unicode spaces as indentation too.
var functionPattern = regexp.MustCompile(`^[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*(public|private|protected)?[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*function`)

// CheckParentheses sums "(" minus ")" from each function definition line
// up to and including the first line containing "{", or up to the end of the file.
func CheckParentheses(lines []string) []*Finding {
	var findings []*Finding
	for i, line := range lines {
		if !functionPattern.MatchString(line) {
			continue
		}
		if signatureDepth(lines[i:]) == 0 {
			continue
		}
		findings = append(findings, &Finding{
			Line:    i + 1,
			Rule:    RuleUnmatchedParentheses,
			Message: "Possible unmatched parentheses in function definition",
		})
	}
	return findings
}

func signatureDepth(lines []string) int {
	depth := 0
	for _, line := range lines {
		depth += strings.Count(line, "(") - strings.Count(line, ")")
		if strings.Contains(line, "{") {
			break
		}
	}
	return depth
}

// A line containing any of these is never reported as a missing semicolon.
var semicolonExemptions = []string{"{", "}", "//", "/*", "*/", "[", "]"}

// CheckSemicolons reports return statements which don't end with ";".
// It doesn't understand multi-line expressions or string contents.
func CheckSemicolons(lines []string) []*Finding {
	var findings []*Finding
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" || isComment(stripped) {
			continue
		}
		if !isUnterminatedReturn(stripped) || containsAny(stripped, semicolonExemptions) {
			continue
		}
		findings = append(findings, &Finding{
			Line:    i + 1,
			Rule:    RuleMissingSemicolon,
			Message: "Missing semicolon after return statement: " + stripped,
		})
	}
	return findings
}

func isComment(stripped string) bool {
	return strings.HasPrefix(stripped, "//") || strings.HasPrefix(stripped, "/*")
}

func isUnterminatedReturn(stripped string) bool {
	if stripped == "return" {
		return true
	}
	if !strings.HasPrefix(stripped, "return ") {
		return false
	}
	for _, suffix := range []string{";", "{", "["} {
		if strings.HasSuffix(stripped, suffix) {
			return false
		}
	}
	return true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
