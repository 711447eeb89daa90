package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/wizard-trials/pkg/actor"
)

var errSelectionCancelled = errors.New("character selection cancelled")

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c", "q"),
		key.WithHelp("esc/q", "quit"),
	),
}

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)

	modalDetailStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86"))

	modalHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

// picker is the BubbleTea model for choosing a character.
// https://github.com/charmbracelet/bubbletea
type picker struct {
	title  string
	roster actor.Roster
	cursor int
	chosen int // -1 until a character is selected
	width  int
	height int
}

func newPicker(title string, roster actor.Roster) picker {
	return picker{title: title, roster: roster, chosen: -1}
}

func (m picker) Init() tea.Cmd {
	return nil
}

func (m picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, pickerKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, pickerKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, pickerKeys.Down):
			if m.cursor < len(m.roster)-1 {
				m.cursor++
			}
		case key.Matches(msg, pickerKeys.Select):
			if len(m.roster) > 0 {
				m.chosen = m.cursor
				return m, tea.Quit
			}
		default:
			// Number keys jump straight to a character
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.roster) {
				m.cursor = n - 1
			}
		}
	}

	return m, nil
}

func (m picker) View() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render(m.title))
	content.WriteString("\n\n")

	for i, spec := range m.roster {
		line := fmt.Sprintf("%d. %s", i+1, spec.Name)
		if i == m.cursor {
			content.WriteString(modalSelectedItemStyle.Render("▶ " + line))
		} else {
			content.WriteString(modalItemStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}

	if c, err := actor.NewCharacterFromSpec(m.selected()); err == nil {
		var stats []string
		for _, st := range c.Stats() {
			stats = append(stats, st.String())
		}
		content.WriteString("\n")
		content.WriteString(modalDetailStyle.Render(c.Archetype.Title() + ": " + strings.Join(stats, ", ")))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(modalHelpStyle.Render(m.helpLine()))

	modal := modalStyle.Width(60).Render(content.String())
	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m picker) helpLine() string {
	var parts []string
	for _, b := range []key.Binding{pickerKeys.Up, pickerKeys.Down, pickerKeys.Select, pickerKeys.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (m picker) selected() *actor.CharacterSpec {
	if m.cursor < 0 || m.cursor >= len(m.roster) {
		return nil
	}
	return &m.roster[m.cursor]
}

// runPicker shows the picker until the player selects or quits.
func runPicker(ctx context.Context, title string, roster actor.Roster, in io.Reader, out io.Writer) (*actor.CharacterSpec, error) {
	p := tea.NewProgram(newPicker(title, roster),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("character picker: %w", err)
	}
	m, ok := final.(picker)
	if !ok || m.chosen < 0 {
		return nil, errSelectionCancelled
	}
	return &m.roster[m.chosen], nil
}
