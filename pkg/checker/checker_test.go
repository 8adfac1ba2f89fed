package checker_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phpsanity/phpsanity/pkg/checker"
	"github.com/spf13/afero"
)

func TestCheck(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		exp     []*checker.Finding
	}{
		{
			name: "clean",
			content: `<?php
class Foo {
    public function bar($a, $b) {
        return $a + $b;
    }
}
`,
		},
		{
			name:    "sample",
			content: "function test( {\nreturn",
			exp: []*checker.Finding{
				{
					File:    "sample.php",
					Rule:    checker.RuleBraceMismatch,
					Message: "Brace mismatch: 1 opening, 0 closing",
				},
				{
					File:    "sample.php",
					Line:    1,
					Rule:    checker.RuleUnmatchedParentheses,
					Message: "Possible unmatched parentheses in function definition",
				},
				{
					File:    "sample.php",
					Line:    2,
					Rule:    checker.RuleMissingSemicolon,
					Message: "Missing semicolon after return statement: return",
				},
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			got := checker.Check("sample.php", d.content)
			if got.File != "sample.php" {
				t.Fatalf("wanted sample.php, got %s", got.File)
			}
			if diff := cmp.Diff(d.exp, got.Findings); diff != "" {
				t.Fatal(diff)
			}
			if got.Clean() != (len(d.exp) == 0) {
				t.Fatalf("Clean() = %v", got.Clean())
			}
		})
	}
}

func TestCheck_idempotent(t *testing.T) {
	t.Parallel()
	content := "function test( {\nreturn\nreturn 5\n"
	first := checker.Check("a.php", content)
	second := checker.Check("a.php", content)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
}

func TestCheckFile(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "app/sample.php", []byte("function test( {\nreturn"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := checker.CheckFile(fs, "app/sample.php")
	if len(got.Findings) != 3 {
		t.Fatalf("wanted 3 findings, got %d", len(got.Findings))
	}

	got = checker.CheckFile(fs, "app/missing.php")
	if len(got.Findings) != 1 {
		t.Fatalf("wanted 1 finding, got %d", len(got.Findings))
	}
	f := got.Findings[0]
	if f.Rule != checker.RuleReadError {
		t.Errorf("wanted %s, got %s", checker.RuleReadError, f.Rule)
	}
	if f.Line != 0 {
		t.Errorf("read errors have no line, got %d", f.Line)
	}
	if f.File != "app/missing.php" {
		t.Errorf("wanted app/missing.php, got %s", f.File)
	}
	if !strings.HasPrefix(f.String(), "Error reading file: ") {
		t.Errorf("unexpected message %q", f.String())
	}
}

func TestFinding_String(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		finding *checker.Finding
		exp     string
	}{
		{
			name:    "without line",
			finding: &checker.Finding{Message: "Brace mismatch: 1 opening, 0 closing"},
			exp:     "Brace mismatch: 1 opening, 0 closing",
		},
		{
			name:    "with line",
			finding: &checker.Finding{Line: 12, Message: "Missing semicolon after return statement: return"},
			exp:     "Line 12: Missing semicolon after return statement: return",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			if got := d.finding.String(); got != d.exp {
				t.Fatalf(`wanted %s, got %s`, d.exp, got)
			}
		})
	}
}
