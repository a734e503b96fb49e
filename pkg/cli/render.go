/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hpckit/qsend/pkg/plan"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Faint(true).Width(8)

	titleCaser = cases.Title(language.English)
)

// renderPreview prints every resolved command pair. Styling applies to the
// labels only; the command strings are written verbatim so the preview shows
// exactly what a run would execute.
func renderPreview(w io.Writer, p *plan.Plan) error {
	for i, rc := range p.Commands {
		header := fmt.Sprintf("%s %d/%d: %s -> %s (%s)",
			titleCaser.String("job"), i+1, len(p.Commands), rc.File, rc.Cluster, rc.Target)
		fmt.Fprintln(w, headerStyle.Render(header))
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("sync"), rc.Sync)
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("submit"), rc.Submit)
	}
	return nil
}
