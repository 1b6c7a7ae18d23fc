// Package chat implements the interactive interpellation interface: a
// terminal chat against the simulated rival delegation, backed by a
// debate session holder.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"munassist/internal/debate"
)

const inputHeight = 3

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141")).
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Messages produced by background session calls.
type (
	sessionStartedMsg struct{ first string }
	sessionReplyMsg   struct{ reply string }
	sessionErrMsg     struct{ err error }
)

// Model drives the debate chat loop. Input stays disabled while a call
// is in flight; one outstanding call at a time.
type Model struct {
	holder *debate.Holder
	speech string

	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	isLoading bool
	errText   string
	width     int
	height    int
	ready     bool
}

// New builds the chat model for a fresh debate around the given speech.
// The session itself is opened asynchronously by Init.
func New(holder *debate.Holder, speech string) Model {
	ta := textarea.New()
	ta.Placeholder = "Escribe tu respuesta..."
	ta.CharLimit = 0
	ta.SetHeight(inputHeight)
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))

	return Model{
		holder:    holder,
		speech:    speech,
		textarea:  ta,
		spinner:   sp,
		isLoading: true,
	}
}

// Run opens the debate and blocks until the user leaves the session.
func Run(holder *debate.Holder, speech string) error {
	p := tea.NewProgram(New(holder, speech), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startSession())
}

func (m Model) startSession() tea.Cmd {
	holder, speech := m.holder, m.speech
	return func() tea.Msg {
		first, err := holder.Start(context.Background(), speech)
		if err != nil {
			return sessionErrMsg{err: err}
		}
		return sessionStartedMsg{first: first}
	}
}

func (m Model) sendMessage(message string) tea.Cmd {
	holder := m.holder
	return func() tea.Msg {
		reply, err := holder.Send(context.Background(), message)
		if err != nil {
			return sessionErrMsg{err: err}
		}
		return sessionReplyMsg{reply: reply}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		chromeHeight := inputHeight + 4
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.textarea.SetWidth(msg.Width - 2)
		m.renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-4),
		)
		m.refreshTranscript()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.isLoading {
				return m, nil
			}
			text := strings.TrimSpace(m.textarea.Value())
			if text == "" {
				return m, nil
			}
			m.textarea.Reset()
			m.textarea.Blur()
			m.isLoading = true
			m.errText = ""
			cmds = append(cmds, m.sendMessage(text), m.spinner.Tick)
		}

	case sessionStartedMsg:
		m.isLoading = false
		m.errText = ""
		m.textarea.Focus()
		m.refreshTranscript()

	case sessionReplyMsg:
		m.isLoading = false
		m.errText = ""
		m.textarea.Focus()
		m.refreshTranscript()

	case sessionErrMsg:
		m.isLoading = false
		if m.holder.Active() {
			m.errText = "Ocurrió un error al obtener la respuesta. Por favor, inténtalo de nuevo."
			m.textarea.Focus()
		} else {
			m.errText = "Ocurrió un error al iniciar el debate. Por favor, inténtalo de nuevo."
		}
		m.refreshTranscript()

	case spinner.TickMsg:
		if m.isLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			// The user entry is appended optimistically while the
			// reply is still in flight; pick it up each tick.
			m.refreshTranscript()
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refreshTranscript re-renders the holder's transcript into the viewport
// and pins the view to the latest entry.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}
	var b strings.Builder
	for _, entry := range m.holder.Transcript() {
		switch entry.Sender {
		case debate.SenderUser:
			b.WriteString(userStyle.Render("Tú"))
		case debate.SenderAssistant:
			b.WriteString(assistantStyle.Render("Delegación rival"))
		}
		b.WriteString("\n")
		b.WriteString(m.renderEntry(entry.Text))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

func (m *Model) renderEntry(text string) string {
	if m.renderer == nil {
		return text
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

func (m Model) View() string {
	if !m.ready {
		return "Preparando la interpelación..."
	}

	var status string
	switch {
	case m.isLoading:
		status = m.spinner.View() + statusStyle.Render(" La delegación rival está redactando su respuesta...")
	case m.errText != "":
		status = errorStyle.Render(m.errText)
	default:
		status = statusStyle.Render("Enter para enviar · Esc para salir")
	}

	return fmt.Sprintf("%s\n%s\n%s", m.viewport.View(), status, m.textarea.View())
}
