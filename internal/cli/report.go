package cli

import (
	"fmt"
	"strings"

	"hourlog/internal/config"
	"hourlog/internal/domain"
)

// RenderReport formats the status selection, one line per entry followed
// by an indented description line when a non-empty description exists.
// Open entries show "<- clocked in" in place of an out time.
func RenderReport(entries []domain.Entry, display config.DisplayConfig) string {
	var b strings.Builder
	for _, e := range entries {
		out := "<- clocked in"
		if e.Out != nil {
			out = "- " + e.Out.Format(display.TimeFormat)
		}
		fmt.Fprintf(&b, "%-*s: %s %s\n",
			display.ProjectWidth, e.Project, e.In.Format(display.TimeFormat), out)
		if e.Description != nil && *e.Description != "" {
			fmt.Fprintf(&b, "└──%s\n", *e.Description)
		}
	}
	return b.String()
}
