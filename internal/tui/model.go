// Package tui reads the user's answers to game prompts, either through a
// Bubble Tea text input or from plain lines of text.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel is a one-question Bubble Tea model. It quits as soon as the
// user submits an answer or gives up.
type PromptModel struct {
	question string
	input    textinput.Model
	answer   string
	done     bool
	quit     bool
}

// NewPromptModel creates a model asking question.
func NewPromptModel(question string) *PromptModel {
	ti := textinput.New()
	ti.Placeholder = placeholderFor(question)
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32
	ti.PromptStyle = PromptStyle
	ti.TextStyle = TextStyle
	ti.Prompt = "> "

	return &PromptModel{question: strings.TrimSpace(question), input: ti}
}

// placeholderFor suggests the shape of the expected answer
func placeholderFor(question string) string {
	switch {
	case strings.Contains(question, "(yes/no)"):
		return "yes or no"
	case strings.Contains(question, "(1/2)"):
		return "1 or 2"
	case strings.Contains(question, "amount"):
		return "coins"
	default:
		return ""
	}
}

// Init starts the cursor blinking.
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = m.input.Value()
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the question and the input line. Once answered, the answer
// stays on screen next to the question.
func (m *PromptModel) View() string {
	switch {
	case m.quit:
		return QuestionStyle.Render(m.question) + "\n"
	case m.done:
		return QuestionStyle.Render(m.question) + " " + AnswerStyle.Render(m.answer) + "\n"
	default:
		return QuestionStyle.Render(m.question) + "\n" +
			m.input.View() + "\n" +
			HintStyle.Render("enter to submit • esc to quit") + "\n"
	}
}

// Answer returns the submitted text and whether the user submitted at all.
func (m *PromptModel) Answer() (string, bool) {
	return m.answer, m.done
}
