package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type textStyles struct {
	title    lipgloss.Style
	engineer lipgloss.Style
	route    lipgloss.Style
	muted    lipgloss.Style
	warn     lipgloss.Style
}

// Styles are bound to a renderer for w so colors are dropped on non-terminals.
func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		title:    r.NewStyle().Bold(true).Underline(true),
		engineer: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		route:    r.NewStyle().Foreground(lipgloss.Color("10")),
		muted:    r.NewStyle().Faint(true),
		warn:     r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// WriteText prints assignments and routes for a terminal.
func WriteText(w io.Writer, r Report) error {
	st := newTextStyles(w)
	var b strings.Builder

	b.WriteString(st.title.Render("Job Assignments and Routes"))
	b.WriteString("\n\n")

	for _, e := range r.Engineers {
		who := st.engineer.Render(fmt.Sprintf("Engineer %d (%s)", e.EngineerID, e.Name))
		if len(e.JobIDs) == 0 {
			fmt.Fprintf(&b, "%s %s\n\n", who, st.muted.Render("has no assigned jobs."))
			continue
		}

		fmt.Fprintf(&b, "%s assigned jobs: %s\n", who, formatIDs(e.JobIDs))
		switch {
		case e.RouteFailure != "":
			fmt.Fprintf(&b, "  %s\n", st.warn.Render("Route failed: "+e.RouteFailure))
		case e.RouteCost != nil:
			fmt.Fprintf(&b, "  Optimal route: %s (total distance %s)\n",
				st.route.Render(joinRoute(e.Route)), formatCost(*e.RouteCost))
		}
		b.WriteString("\n")
	}

	if len(r.Unassigned) > 0 {
		b.WriteString(st.title.Render("Unassigned Jobs"))
		b.WriteString("\n\n")
		for _, j := range r.Unassigned {
			fmt.Fprintf(&b, "Job %d at %s: %s\n", j.JobID, j.Location,
				st.warn.Render("unassigned, no capable engineer (requires "+strings.Join(j.RequiredSkills, ", ")+")"))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}
