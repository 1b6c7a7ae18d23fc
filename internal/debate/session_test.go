package debate

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munassist/internal/assistant"
)

type fakeConversation struct {
	replies []string
	errs    []error
	calls   int
	sent    []string
}

func (f *fakeConversation) SendMessage(ctx context.Context, message string) (string, error) {
	i := f.calls
	f.calls++
	f.sent = append(f.sent, message)
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", errors.New("no scripted reply")
}

type fakeService struct {
	conv     *fakeConversation
	startErr error
	starts   int
}

func (f *fakeService) StartDebate(ctx context.Context, speech string) (assistant.Conversation, string, error) {
	f.starts++
	if f.startErr != nil {
		return nil, "", f.startErr
	}
	first, err := f.conv.SendMessage(ctx, speech)
	if err != nil {
		return nil, "", err
	}
	return f.conv, first, nil
}

func (f *fakeService) ContinueDebate(ctx context.Context, conv assistant.Conversation, message string) (string, error) {
	if conv == nil {
		return "", errors.New("nil conversation")
	}
	return conv.SendMessage(ctx, message)
}

func TestHolder_StartBuildsAnnotatedTranscript(t *testing.T) {
	svc := &fakeService{conv: &fakeConversation{replies: []string{"La delegación cuestiona el punto dos."}}}
	h := NewHolder(svc)

	require.False(t, h.Active())
	assert.Empty(t, h.SessionID())

	first, err := h.Start(context.Background(), "Mi discurso")
	require.NoError(t, err)
	assert.Equal(t, "La delegación cuestiona el punto dos.", first)
	assert.True(t, h.Active())
	assert.NotEmpty(t, h.SessionID())

	want := []Entry{
		{Sender: SenderUser, Text: "(Discurso inicial)\nMi discurso"},
		{Sender: SenderAssistant, Text: "La delegación cuestiona el punto dos."},
	}
	if diff := cmp.Diff(want, h.Transcript()); diff != "" {
		t.Errorf("Transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestHolder_SendAppendsInOrder(t *testing.T) {
	svc := &fakeService{conv: &fakeConversation{replies: []string{"primera réplica", "segunda réplica"}}}
	h := NewHolder(svc)

	_, err := h.Start(context.Background(), "discurso")
	require.NoError(t, err)

	reply, err := h.Send(context.Background(), "mi respuesta")
	require.NoError(t, err)
	assert.Equal(t, "segunda réplica", reply)

	want := []Entry{
		{Sender: SenderUser, Text: "(Discurso inicial)\ndiscurso"},
		{Sender: SenderAssistant, Text: "primera réplica"},
		{Sender: SenderUser, Text: "mi respuesta"},
		{Sender: SenderAssistant, Text: "segunda réplica"},
	}
	if diff := cmp.Diff(want, h.Transcript()); diff != "" {
		t.Errorf("Transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestHolder_SendWithoutSession(t *testing.T) {
	h := NewHolder(&fakeService{conv: &fakeConversation{}})

	_, err := h.Send(context.Background(), "mensaje")
	require.ErrorIs(t, err, ErrNoSession)
	assert.Empty(t, h.Transcript())
}

func TestHolder_FailedSendKeepsOptimisticEntry(t *testing.T) {
	svc := &fakeService{conv: &fakeConversation{
		replies: []string{"apertura", "", "recuperado"},
		errs:    []error{nil, errors.New("503"), nil},
	}}
	h := NewHolder(svc)

	_, err := h.Start(context.Background(), "discurso")
	require.NoError(t, err)

	_, err = h.Send(context.Background(), "intento fallido")
	require.Error(t, err)

	// The user entry stays; no rollback, no assistant entry.
	got := h.Transcript()
	require.Len(t, got, 3)
	assert.Equal(t, Entry{Sender: SenderUser, Text: "intento fallido"}, got[2])
	assert.True(t, h.Active())

	// A later send appends after the stranded entry.
	reply, err := h.Send(context.Background(), "segundo intento")
	require.NoError(t, err)
	assert.Equal(t, "recuperado", reply)
	got = h.Transcript()
	require.Len(t, got, 5)
	assert.Equal(t, Entry{Sender: SenderUser, Text: "segundo intento"}, got[3])
	assert.Equal(t, Entry{Sender: SenderAssistant, Text: "recuperado"}, got[4])
}

func TestHolder_StartReplacesPriorSession(t *testing.T) {
	svc := &fakeService{conv: &fakeConversation{replies: []string{"apertura uno", "apertura dos"}}}
	h := NewHolder(svc)

	_, err := h.Start(context.Background(), "primer discurso")
	require.NoError(t, err)
	firstID := h.SessionID()

	_, err = h.Start(context.Background(), "segundo discurso")
	require.NoError(t, err)

	assert.Equal(t, 2, svc.starts)
	assert.NotEqual(t, firstID, h.SessionID())
	got := h.Transcript()
	require.Len(t, got, 2)
	assert.Equal(t, "(Discurso inicial)\nsegundo discurso", got[0].Text)
}

func TestHolder_FailedStartLeavesHolderIdle(t *testing.T) {
	svc := &fakeService{conv: &fakeConversation{replies: []string{"apertura"}}}
	h := NewHolder(svc)

	_, err := h.Start(context.Background(), "discurso")
	require.NoError(t, err)

	svc.startErr = errors.New("credencial revocada")
	_, err = h.Start(context.Background(), "otro discurso")
	require.Error(t, err)

	// The prior session was discarded before the attempt.
	assert.False(t, h.Active())
	assert.Empty(t, h.SessionID())
	assert.Empty(t, h.Transcript())
}

func TestHolder_ResetClearsEverything(t *testing.T) {
	svc := &fakeService{conv: &fakeConversation{replies: []string{"apertura"}}}
	h := NewHolder(svc)

	_, err := h.Start(context.Background(), "discurso")
	require.NoError(t, err)

	h.Reset()
	assert.False(t, h.Active())
	assert.Empty(t, h.SessionID())
	assert.Empty(t, h.Transcript())
}

func TestHolder_TranscriptReturnsCopy(t *testing.T) {
	svc := &fakeService{conv: &fakeConversation{replies: []string{"apertura"}}}
	h := NewHolder(svc)

	_, err := h.Start(context.Background(), "discurso")
	require.NoError(t, err)

	got := h.Transcript()
	got[0].Text = "mutado"
	assert.Equal(t, "(Discurso inicial)\ndiscurso", h.Transcript()[0].Text)
}
