package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/wizard-trials/pkg/narration"
	"github.com/muesli/reflow/wordwrap"
)

const wrapWidth = 80

type styles struct {
	speaker  lipgloss.Style
	narrator lipgloss.Style
	prompt   lipgloss.Style
	option   lipgloss.Style
	roll     lipgloss.Style
	result   lipgloss.Style
	progress lipgloss.Style
	system   lipgloss.Style
	err      lipgloss.Style
	input    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		speaker: r.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true),
		narrator: r.NewStyle().
			Foreground(lipgloss.Color("86")), // green
		prompt: r.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true),
		option: r.NewStyle().
			Foreground(lipgloss.Color("255")).
			PaddingLeft(2),
		roll: r.NewStyle().
			Foreground(lipgloss.Color("214")), // yellow
		result: r.NewStyle().
			Foreground(lipgloss.Color("39")), // teal
		progress: r.NewStyle().
			Foreground(lipgloss.Color("62")).
			Italic(true),
		system: r.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		err: r.NewStyle().
			Foreground(lipgloss.Color("196")), // red
		input: r.NewStyle().
			Foreground(lipgloss.Color("240")), // dark grey
	}
}

// consoleSink styles narration for a terminal. Colors are dropped
// automatically when w is not a TTY.
type consoleSink struct {
	mu     sync.Mutex
	w      io.Writer
	width  int
	styles styles
}

func newConsoleSink(w io.Writer, width int) *consoleSink {
	if width <= 0 {
		width = wrapWidth
	}
	return &consoleSink{
		w:      w,
		width:  width,
		styles: newStyles(lipgloss.NewRenderer(w)),
	}
}

func (c *consoleSink) Emit(l narration.Line) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, c.format(l))
}

func (c *consoleSink) format(l narration.Line) string {
	s := c.styles
	switch l.Kind {
	case narration.KindNarrator:
		if l.Speaker == "" {
			return s.narrator.Render(wordwrap.String(l.Text, c.width))
		}
		prefix := l.Speaker + ": "
		wrapped := wordwrap.String(l.Text, c.width-len(prefix))
		return "\n" + s.speaker.Render(l.Speaker+":") + " " + s.narrator.Render(wrapped)
	case narration.KindPrompt:
		return s.prompt.Render(wordwrap.String(l.Text, c.width))
	case narration.KindOption:
		return s.option.Render(wordwrap.String(l.Text, c.width-2))
	case narration.KindRoll:
		return s.roll.Render(l.Text)
	case narration.KindResult:
		return s.result.Render(wordwrap.String(l.String(), c.width))
	case narration.KindProgress:
		return s.progress.Render(wordwrap.String(l.String(), c.width))
	case narration.KindSystem:
		return s.system.Render(wordwrap.String(l.String(), c.width))
	case narration.KindError:
		return s.err.Render(wordwrap.String(l.String(), c.width))
	default:
		return wordwrap.String(l.String(), c.width)
	}
}

// lineInput reads one trimmed line per prompt from a reader.
type lineInput struct {
	r      *bufio.Reader
	w      io.Writer
	prompt lipgloss.Style
}

func newLineInput(r io.Reader, w io.Writer) *lineInput {
	return &lineInput{
		r:      bufio.NewReader(r),
		w:      w,
		prompt: newStyles(lipgloss.NewRenderer(w)).input,
	}
}

func (l *lineInput) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	_, _ = fmt.Fprint(l.w, l.prompt.Render(prompt))

	line, err := l.r.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
