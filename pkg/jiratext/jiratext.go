// Package jiratext normalizes LLM-generated markdown into plain text
// that pastes cleanly into the Jira rich text editor (no markdown, no
// wiki syntax).
package jiratext

import (
	"regexp"
	"strings"
)

// sectionHeading matches numbered headings like "1. **Understanding the Feature**:"
var sectionHeading = regexp.MustCompile(`^\d+\.\s+\*{0,2}(.+?)\*{0,2}:`)

var multiSpace = regexp.MustCompile(`\s{2,}`)

// Format flattens numbered headings, keeps bullet points, and merges
// loose lines into paragraphs.
func Format(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimSpace(text)

	var output []string
	var buffer strings.Builder

	flush := func() {
		if buffer.Len() > 0 {
			output = append(output, strings.TrimSpace(buffer.String()))
			buffer.Reset()
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			flush()
			continue
		}

		if m := sectionHeading.FindStringSubmatch(line); m != nil {
			flush()
			output = append(output, m[1]+":")
			continue
		}

		if strings.HasPrefix(line, "-") {
			flush()
			output = append(output, line)
			continue
		}

		buffer.WriteString(" ")
		buffer.WriteString(line)
	}
	flush()

	formatted := strings.Join(output, "\n")
	return multiSpace.ReplaceAllString(formatted, " ")
}
