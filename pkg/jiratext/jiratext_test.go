package jiratext_test

import (
	"strings"
	"testing"

	"jira-refinement-copilot/pkg/jiratext"
)

func TestFormat(t *testing.T) {
	t.Run("Numbered Bold Headings Flattened", func(t *testing.T) {
		in := "1. **Understanding the Feature**: \nThe feature allows login."
		out := jiratext.Format(in)
		if !strings.Contains(out, "Understanding the Feature:") {
			t.Errorf("heading not flattened: %q", out)
		}
		if strings.Contains(out, "**") {
			t.Errorf("markdown bold leaked through: %q", out)
		}
	})

	t.Run("Bullets Preserved", func(t *testing.T) {
		in := "Summary line.\n\n- GIVEN a user\n- WHEN they click\n- THEN it works"
		out := jiratext.Format(in)
		lines := strings.Split(out, "\n")
		var bullets int
		for _, l := range lines {
			if strings.HasPrefix(l, "-") {
				bullets++
			}
		}
		if bullets != 3 {
			t.Errorf("expected 3 bullet lines, got %d in %q", bullets, out)
		}
	})

	t.Run("Loose Lines Merged Into Paragraph", func(t *testing.T) {
		in := "This is the first half\nand this is the second half."
		out := jiratext.Format(in)
		if out != "This is the first half and this is the second half." {
			t.Errorf("paragraph not merged: %q", out)
		}
	})

	t.Run("Windows Line Endings And Outer Whitespace", func(t *testing.T) {
		in := "\r\n  Hello there.  \r\n"
		out := jiratext.Format(in)
		if out != "Hello there." {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if out := jiratext.Format(""); out != "" {
			t.Errorf("expected empty output, got %q", out)
		}
	})
}
