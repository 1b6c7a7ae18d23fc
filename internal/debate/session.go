// Package debate owns the interpellation session state machine. A Holder
// is either idle or holds exactly one active conversation plus the
// ordered transcript of the exchange. The remote service owns session
// expiry; the Holder never validates liveness locally.
package debate

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"munassist/internal/assistant"
	"munassist/internal/logging"
)

// ErrNoSession is returned by Send when no debate has been started.
var ErrNoSession = errors.New("no hay una sesión de debate activa")

// Sender identifies who produced a transcript entry.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Entry is one turn of the debate transcript.
type Entry struct {
	Sender Sender
	Text   string
}

// Service is the subset of the assistant facade the Holder needs.
type Service interface {
	StartDebate(ctx context.Context, speech string) (assistant.Conversation, string, error)
	ContinueDebate(ctx context.Context, conv assistant.Conversation, message string) (string, error)
}

// Holder is the state-tagged session owner: idle until Start succeeds,
// then active until Reset or a subsequent Start replaces the session.
// Safe for use from a single goroutine per method; the mutex only
// guards against a UI tick racing a reply.
type Holder struct {
	mu         sync.Mutex
	service    Service
	sessionID  string
	conv       assistant.Conversation
	transcript []Entry
}

// NewHolder returns an idle Holder bound to the given service.
func NewHolder(service Service) *Holder {
	return &Holder{service: service}
}

// Active reports whether a debate session is in progress.
func (h *Holder) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conv != nil
}

// SessionID returns the current session identifier, or "" when idle.
func (h *Holder) SessionID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessionID
}

// Start opens a new debate from the delegate's speech. Any prior session
// is discarded first, whether or not the new one succeeds. On success the
// transcript holds the annotated speech followed by the opening rebuttal.
func (h *Holder) Start(ctx context.Context, speech string) (string, error) {
	h.Reset()

	conv, first, err := h.service.StartDebate(ctx, speech)
	if err != nil {
		logging.DebateError("Failed to start session: %v", err)
		return "", err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessionID = uuid.NewString()
	h.conv = conv
	h.transcript = []Entry{
		{Sender: SenderUser, Text: "(Discurso inicial)\n" + speech},
		{Sender: SenderAssistant, Text: first},
	}
	logging.Debate("Session %s started, %d turns", h.sessionID, len(h.transcript))
	return first, nil
}

// Send forwards one user message on the active session. The user entry
// is appended before the call; on failure it stays in the transcript and
// the error is surfaced without rollback or retry.
func (h *Holder) Send(ctx context.Context, message string) (string, error) {
	h.mu.Lock()
	if h.conv == nil {
		h.mu.Unlock()
		return "", ErrNoSession
	}
	conv := h.conv
	h.transcript = append(h.transcript, Entry{Sender: SenderUser, Text: message})
	h.mu.Unlock()

	reply, err := h.service.ContinueDebate(ctx, conv, message)
	if err != nil {
		logging.DebateError("Session %s send failed: %v", h.SessionID(), err)
		return "", err
	}

	h.mu.Lock()
	h.transcript = append(h.transcript, Entry{Sender: SenderAssistant, Text: reply})
	h.mu.Unlock()
	logging.DebateDebug("Session %s reply of %d chars", h.SessionID(), len(reply))
	return reply, nil
}

// Reset discards the session and transcript, returning to the idle state.
func (h *Holder) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conv != nil {
		logging.Debate("Session %s reset", h.sessionID)
	}
	h.sessionID = ""
	h.conv = nil
	h.transcript = nil
}

// Transcript returns a copy of the entries in exchange order.
func (h *Holder) Transcript() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.transcript))
	copy(out, h.transcript)
	return out
}
