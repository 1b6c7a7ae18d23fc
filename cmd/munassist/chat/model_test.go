package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munassist/internal/assistant"
	"munassist/internal/debate"
)

type scriptedConversation struct {
	replies []string
	calls   int
}

func (s *scriptedConversation) SendMessage(ctx context.Context, message string) (string, error) {
	if s.calls >= len(s.replies) {
		return "", errors.New("sin respuesta")
	}
	reply := s.replies[s.calls]
	s.calls++
	return reply, nil
}

type scriptedService struct {
	conv *scriptedConversation
}

func (s *scriptedService) StartDebate(ctx context.Context, speech string) (assistant.Conversation, string, error) {
	first, err := s.conv.SendMessage(ctx, speech)
	if err != nil {
		return nil, "", err
	}
	return s.conv, first, nil
}

func (s *scriptedService) ContinueDebate(ctx context.Context, conv assistant.Conversation, message string) (string, error) {
	return conv.SendMessage(ctx, message)
}

func newTestModel(replies ...string) Model {
	holder := debate.NewHolder(&scriptedService{conv: &scriptedConversation{replies: replies}})
	m := New(holder, "mi discurso")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func TestModel_StartsLoading(t *testing.T) {
	m := newTestModel("apertura")
	assert.True(t, m.isLoading)
	assert.Contains(t, m.View(), "redactando su respuesta")
}

func TestModel_SessionStartShowsTranscript(t *testing.T) {
	m := newTestModel("La delegación cuestiona el punto uno.")

	msg := m.startSession()()
	started, ok := msg.(sessionStartedMsg)
	require.True(t, ok, "expected sessionStartedMsg, got %T", msg)
	assert.Equal(t, "La delegación cuestiona el punto uno.", started.first)

	updated, _ := m.Update(started)
	m = updated.(Model)
	assert.False(t, m.isLoading)
	assert.Contains(t, m.View(), "Delegación rival")
	assert.Contains(t, m.View(), "Enter para enviar")
}

func TestModel_StartFailureShowsError(t *testing.T) {
	m := newTestModel() // no scripted replies: start fails

	msg := m.startSession()()
	_, ok := msg.(sessionErrMsg)
	require.True(t, ok, "expected sessionErrMsg, got %T", msg)

	updated, _ := m.Update(msg)
	m = updated.(Model)
	assert.False(t, m.isLoading)
	assert.Contains(t, m.View(), "Ocurrió un error al iniciar el debate")
}

func TestModel_EnterIgnoredWhileLoading(t *testing.T) {
	m := newTestModel("apertura")
	require.True(t, m.isLoading)

	m.textarea.SetValue("una réplica impaciente")
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	// Still loading, nothing sent, and the draft is untouched.
	assert.True(t, m.isLoading)
	assert.Empty(t, m.holder.Transcript())
}

func TestModel_SendFlow(t *testing.T) {
	m := newTestModel("apertura", "segunda réplica")

	updated, _ := m.Update(m.startSession()())
	m = updated.(Model)

	m.textarea.SetValue("mi contraargumento")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.True(t, m.isLoading)
	require.NotNil(t, cmd)

	// Drain the batched commands until the session reply arrives.
	reply := drainForReply(t, cmd)
	updated, _ = m.Update(reply)
	m = updated.(Model)

	assert.False(t, m.isLoading)
	transcript := m.holder.Transcript()
	require.Len(t, transcript, 4)
	assert.Equal(t, "mi contraargumento", transcript[2].Text)
	assert.Equal(t, "segunda réplica", transcript[3].Text)
	assert.Contains(t, m.View(), "Enter para enviar")
}

func TestModel_EscQuits(t *testing.T) {
	m := newTestModel("apertura")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.NotNil(t, cmd())
}

// drainForReply walks a (possibly batched) command tree looking for the
// session reply message.
func drainForReply(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		switch m := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, m...)
		case sessionReplyMsg, sessionErrMsg:
			return m
		}
	}
	t.Fatal("no session reply produced")
	return nil
}

func TestModel_ViewBeforeSizing(t *testing.T) {
	holder := debate.NewHolder(&scriptedService{conv: &scriptedConversation{}})
	m := New(holder, "discurso")
	assert.True(t, strings.Contains(m.View(), "Preparando"))
}
