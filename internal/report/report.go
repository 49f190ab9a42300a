// Package report renders human-facing CLI summaries.
package report

import (
	"fmt"
	"strings"

	"github.com/danmuck/spritelist/internal/listing"
)

// Summary renders the outcome of one conversion or check.
func Summary(verb, input, output string, res listing.Result) string {
	s := newStyles()
	var b strings.Builder
	b.WriteString(s.ok.Render(" " + verb + " "))
	b.WriteString(" ")
	b.WriteString(s.path.Render(displayPath(input)))
	b.WriteString(" -> ")
	b.WriteString(s.path.Render(displayPath(output)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s %s",
		s.label.Render("bytes"), s.value.Render(fmt.Sprint(res.Bytes)),
		s.label.Render("records"), s.value.Render(fmt.Sprint(res.Records)))
	if rem := res.Bytes % listing.RecordSize; rem != 0 {
		fmt.Fprintf(&b, "  %s %s", s.label.Render("partial"), s.value.Render(fmt.Sprint(rem)))
	}
	return b.String()
}

// Failure renders an error banner.
func Failure(err error) string {
	s := newStyles()
	return s.err.Render(" error ") + " " + err.Error()
}

func displayPath(p string) string {
	if p == "-" {
		return "(stdio)"
	}
	return p
}
