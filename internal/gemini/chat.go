package gemini

import (
	"context"
)

// Chat is an opaque multi-turn conversation handle. The full turn history
// is threaded through every call, so the remote service sees the whole
// conversation each time. A Chat is owned by a single caller and is not
// safe for concurrent use.
type Chat struct {
	client            *Client
	model             string
	systemInstruction string
	history           []Content
}

// StartChat creates a new conversation on the given model. The system
// instruction, when non-empty, is sent with every turn.
func (c *Client) StartChat(model, systemInstruction string) *Chat {
	return &Chat{
		client:            c,
		model:             model,
		systemInstruction: systemInstruction,
	}
}

// SendMessage sends one user turn and returns the model's reply. The turn
// is committed to the history only when the call succeeds, so a failed
// send leaves the conversation exactly as it was.
func (ch *Chat) SendMessage(ctx context.Context, message string) (string, error) {
	userTurn := Content{Role: "user", Parts: []Part{{Text: message}}}

	contents := make([]Content, 0, len(ch.history)+1)
	contents = append(contents, ch.history...)
	contents = append(contents, userTurn)

	req := &GenerateRequest{Contents: contents}
	if ch.systemInstruction != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: ch.systemInstruction}}}
	}

	resp, err := ch.client.GenerateContent(ctx, ch.model, req)
	if err != nil {
		return "", err
	}
	reply, err := resp.Text()
	if err != nil {
		return "", err
	}

	ch.history = append(ch.history, userTurn, Content{Role: "model", Parts: []Part{{Text: reply}}})
	return reply, nil
}

// History returns a copy of the committed conversation turns.
func (ch *Chat) History() []Content {
	out := make([]Content, len(ch.history))
	copy(out, ch.history)
	return out
}
