package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/teenpatti/internal/game"
)

// Prompter asks each question with its own short-lived Bubble Tea program.
// It implements game.Input.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	logger *log.Logger
}

var _ game.Input = (*Prompter)(nil)

// NewPrompter creates a prompter reading keys from in and drawing to out.
func NewPrompter(in io.Reader, out io.Writer, logger *log.Logger) *Prompter {
	return &Prompter{in: in, out: out, logger: logger.WithPrefix("tui")}
}

// Prompt runs the text input until the user answers. Escape or Ctrl+C is
// reported as io.EOF, meaning the user has left.
func (p *Prompter) Prompt(ctx context.Context, message string) (string, error) {
	model := NewPromptModel(message)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}

	answer, ok := final.(*PromptModel).Answer()
	if !ok {
		p.logger.Debug("Prompt abandoned", "question", message)
		return "", io.EOF
	}
	p.logger.Debug("Prompt answered", "question", message, "answer", answer)
	return answer, nil
}

// LineReader reads one line of input per prompt, for pipes, scripts and
// terminals where a full-screen input is unwanted. It implements game.Input.
type LineReader struct {
	r   *bufio.Reader
	out io.Writer
}

var _ game.Input = (*LineReader)(nil)

// NewLineReader creates a reader that writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{r: bufio.NewReader(in), out: out}
}

// Prompt writes message and returns the next line without its line ending.
// A final line without a newline is still returned; after that io.EOF.
func (l *LineReader) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(l.out, message); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := l.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			_, _ = io.WriteString(l.out, "\n")
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
