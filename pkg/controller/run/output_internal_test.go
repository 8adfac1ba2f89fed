package run

import (
	"bytes"
	"testing"

	"github.com/phpsanity/phpsanity/pkg/checker"
)

func TestPrinter_Result(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	p := NewPrinter(buf, true, false)
	p.Result(&checker.Result{
		File: "app/a.php",
		Findings: []*checker.Finding{
			{File: "app/a.php", Rule: checker.RuleReadError, Message: "Error reading file: permission denied"},
			{File: "app/a.php", Line: 3, Rule: checker.RuleMissingSemicolon, Message: "Missing semicolon after return statement: return"},
		},
	})
	exp := "\napp/a.php:\n  - Error reading file: permission denied\n  - Line 3: Missing semicolon after return statement: return\n"
	if got := buf.String(); got != exp {
		t.Fatalf("wanted %q, got %q", exp, got)
	}
}

func TestPrinter_Summary(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		failed bool
		exp    string
	}{
		{name: "clean", failed: false, exp: messageClean + "\n"},
		{name: "failed", failed: true, exp: "\n" + messageFailed + "\n"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			NewPrinter(buf, true, false).Summary(d.failed)
			if got := buf.String(); got != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}

func TestPrinter_color(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		noColor    bool
		forceColor bool
		exp        string
	}{
		{name: "force", forceColor: true, exp: "\x1b[32m" + messageClean + "\x1b[0m\n"},
		{name: "no color wins", noColor: true, forceColor: true, exp: messageClean + "\n"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			NewPrinter(buf, d.noColor, d.forceColor).Summary(false)
			if got := buf.String(); got != d.exp {
				t.Fatalf("wanted %q, got %q", d.exp, got)
			}
		})
	}
}
