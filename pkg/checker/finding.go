package checker

import "strconv"

// Rule identifies the heuristic that produced a Finding.
type Rule string

const (
	RuleBraceMismatch        Rule = "brace-mismatch"
	RuleUnmatchedParentheses Rule = "unmatched-parentheses"
	RuleMissingSemicolon     Rule = "missing-semicolon"
	RuleReadError            Rule = "read-error"
)

// RuleInfo describes a Rule for structured reports.
type RuleInfo struct {
	ID          Rule
	Description string
}

// Rules returns every rule in detection order, with read errors last.
func Rules() []RuleInfo {
	return []RuleInfo{
		{ID: RuleBraceMismatch, Description: "Counts of opening and closing braces differ"},
		{ID: RuleUnmatchedParentheses, Description: "Parentheses in a function definition are not balanced"},
		{ID: RuleMissingSemicolon, Description: "A return statement is not terminated by a semicolon"},
		{ID: RuleReadError, Description: "The file could not be read"},
	}
}

// Finding is a single issue reported for a file.
// Line is 1-based. Zero means the finding isn't tied to a line.
type Finding struct {
	File    string
	Line    int
	Rule    Rule
	Message string
}

func (f *Finding) String() string {
	if f.Line > 0 {
		return "Line " + strconv.Itoa(f.Line) + ": " + f.Message
	}
	return f.Message
}

// Result holds the findings of one file in detection order.
type Result struct {
	File     string
	Findings []*Finding
}

// Clean reports whether no issue was detected.
func (r *Result) Clean() bool {
	return len(r.Findings) == 0
}
