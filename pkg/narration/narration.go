package narration

import (
	"context"
	"io"
	"strings"
	"sync"
)

// Kind classifies a narration line so sinks can style it. Ordering of
// lines is significant; formatting is up to the sink.
type Kind string

const (
	KindNarrator Kind = "narrator" // Spoken by the narrator
	KindPrompt   Kind = "prompt"   // Question that precedes options
	KindOption   Kind = "option"   // One numbered choice
	KindRoll     Kind = "roll"     // Die roll and check details
	KindResult   Kind = "result"   // Outcome message of an event
	KindProgress Kind = "progress" // Campaign progress updates
	KindSystem   Kind = "system"   // Menus, banners, game over
	KindError    Kind = "error"    // Recoverable input problems
)

// Line is a single piece of narration sent to an output sink.
type Line struct {
	Kind    Kind   `json:"kind"`
	Speaker string `json:"speaker,omitempty"`
	Text    string `json:"text"`
}

// String renders the line as plain text, prefixed by the speaker if any.
func (l Line) String() string {
	if l.Speaker != "" {
		return l.Speaker + ": " + l.Text
	}
	return l.Text
}

// Sink receives narration in order.
type Sink interface {
	Emit(Line)
}

// Input is the only source of player decisions. Implementations own all
// terminal interaction; callers ask for one line at a time.
type Input interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Line) {}

// Recorder is a Sink that keeps every line, used for transcripts and tests.
type Recorder struct {
	mu    sync.Mutex
	lines []Line
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Emit(l Line) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, l)
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Texts returns the plain text of recorded lines of the given kinds, or of
// all lines when no kind is given.
func (r *Recorder) Texts(kinds ...Kind) []string {
	var out []string
	for _, l := range r.Lines() {
		if len(kinds) > 0 && !hasKind(kinds, l.Kind) {
			continue
		}
		out = append(out, l.String())
	}
	return out
}

// Transcript joins every recorded line into newline separated text.
func (r *Recorder) Transcript() string {
	return strings.Join(r.Texts(), "\n")
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Tee fans each line out to every sink in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Emit(l Line) {
	for _, s := range t {
		s.Emit(l)
	}
}

// ScriptedInput answers prompts from a fixed list of lines and returns
// io.EOF once they run out.
type ScriptedInput struct {
	lines   []string
	prompts []string
}

// NewScriptedInput returns an Input that replays lines in order.
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

func (s *ScriptedInput) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// Prompts returns every prompt that was asked, in order.
func (s *ScriptedInput) Prompts() []string {
	return s.prompts
}

// Remaining reports how many scripted lines have not been consumed.
func (s *ScriptedInput) Remaining() int {
	return len(s.lines)
}
