package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/jwebster45206/wizard-trials/pkg/actor"
)

// renderStatSheet draws the chosen character's stats as a table.
func renderStatSheet(r *lipgloss.Renderer, c *actor.Character) string {
	s := newStyles(r)
	border := r.NewStyle().Foreground(lipgloss.Color("62"))

	rows := make([][]string, 0, len(c.Stats()))
	for _, st := range c.Stats() {
		rows = append(rows, []string{st.Name, fmt.Sprintf("%d", st.Value()), st.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		BorderHeader(true).
		BorderRow(false).
		Headers("Stat", "Value", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.prompt.Padding(0, 1)
			}
			return r.NewStyle().Padding(0, 1)
		})

	title := s.system.Render(fmt.Sprintf("%s (%s)", c.Name, c.Archetype.Title()))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.Render())
}
