package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxPostLength = 280

// ComposeModal collects the body of a community feed post.
type ComposeModal struct {
	input textinput.Model
}

// Ensure ComposeModal implements View.
var _ View = (*ComposeModal)(nil)

// NewComposeModal creates a focused, empty post editor.
func NewComposeModal() *ComposeModal {
	ti := textinput.New()
	ti.Placeholder = "How did training go?"
	ti.CharLimit = maxPostLength
	ti.Width = 50
	ti.Focus()
	return &ComposeModal{input: ti}
}

// Value returns the text entered so far.
func (m *ComposeModal) Value() string {
	return m.input.Value()
}

// Init implements View.
func (m *ComposeModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *ComposeModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, emit(DismissModalMsg{})
		case "enter":
			body := strings.TrimSpace(m.input.Value())
			if body == "" {
				return m, nil
			}
			return m, emit(AddPostMsg{Body: body})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *ComposeModal) View() string {
	content := Styles.Title.Render("New post") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: post  Esc: cancel")
	return Styles.Box.Render(content)
}
