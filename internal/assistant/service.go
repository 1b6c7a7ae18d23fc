// Package assistant is the single integration point between the MUN
// delegate features and the Gemini API. Each operation shapes one prompt,
// issues exactly one call, and unwraps the response. No retries, no
// caching, no local session validation.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"munassist/internal/config"
	"munassist/internal/gemini"
	"munassist/internal/media"
)

// Domain errors for the image feature: the call succeeded but the
// response carried no usable image payload.
var (
	ErrImageEditFailed       = errors.New("no se pudo editar la imagen")
	ErrImageGenerationFailed = errors.New("no se pudo generar la imagen personalizada")
)

// thinkingBudget is the extended reasoning budget for problem solving.
const thinkingBudget = 24576

// Citation is a grounding source returned with a research answer.
type Citation struct {
	URI   string
	Title string
}

// ResearchResult is a search-grounded answer with its sources, in the
// order the service returned them.
type ResearchResult struct {
	Text      string
	Citations []Citation
}

// PositionPaper holds the five fields of a position-paper review request.
// All five must be non-empty; enforcing that is the caller's job.
type PositionPaper struct {
	Commission string
	Topic      string
	Delegation string
	Delegate   string
	Content    string
}

// Conversation is an opaque multi-turn debate handle created by
// StartDebate and required by every ContinueDebate call.
type Conversation interface {
	SendMessage(ctx context.Context, message string) (string, error)
}

// Service exposes one operation per feature over a shared Gemini client.
// The client is read-only after construction, so a Service is safe to use
// from independent callers.
type Service struct {
	client      *gemini.Client
	textModel   string
	proModel    string
	imageModel  string
	imagenModel string
}

// NewService builds a Service from the Gemini configuration.
func NewService(client *gemini.Client, cfg config.GeminiConfig) *Service {
	return &Service{
		client:      client,
		textModel:   cfg.TextModel,
		proModel:    cfg.ProModel,
		imageModel:  cfg.ImageModel,
		imagenModel: cfg.ImagenModel,
	}
}

// Research issues a search-grounded call and returns the answer together
// with its grounding citations. Citations is always non-nil; it is empty
// when the response envelope carries no grounding chunks.
func (s *Service) Research(ctx context.Context, query string) (*ResearchResult, error) {
	req := &gemini.GenerateRequest{
		Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: buildResearchPrompt(query)}}}},
		Tools:    []gemini.Tool{{GoogleSearch: &gemini.GoogleSearch{}}},
	}
	resp, err := s.client.GenerateContent(ctx, s.textModel, req)
	if err != nil {
		return nil, err
	}
	text, err := resp.Text()
	if err != nil {
		return nil, err
	}

	chunks := resp.GroundingChunks()
	citations := make([]Citation, 0, len(chunks))
	for _, chunk := range chunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		citations = append(citations, Citation{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return &ResearchResult{Text: text, Citations: citations}, nil
}

// GenerateOrEditImage branches on the presence of an input image. With an
// image it sends an edit request and returns the first image payload;
// without one it requests exactly one square generated image. Both paths
// return a data URI.
func (s *Service) GenerateOrEditImage(ctx context.Context, prompt string, image *media.EncodedImage) (string, error) {
	if image != nil {
		return s.editImage(ctx, prompt, image)
	}
	return s.generateImage(ctx, prompt)
}

func (s *Service) editImage(ctx context.Context, prompt string, image *media.EncodedImage) (string, error) {
	req := &gemini.GenerateRequest{
		Contents: []gemini.Content{{
			Role: "user",
			Parts: []gemini.Part{
				{InlineData: &gemini.InlineData{MIMEType: image.MIMEType, Data: image.Data}},
				{Text: prompt},
			},
		}},
		GenerationConfig: &gemini.GenerationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	}
	resp, err := s.client.GenerateContent(ctx, s.imageModel, req)
	if err != nil {
		return "", err
	}
	inline := resp.FirstInlineData()
	if inline == nil {
		return "", ErrImageEditFailed
	}
	return fmt.Sprintf("data:%s;base64,%s", inline.MIMEType, inline.Data), nil
}

func (s *Service) generateImage(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.GenerateImages(ctx, s.imagenModel, prompt, gemini.ImagenParameters{
		SampleCount:    1,
		AspectRatio:    "1:1",
		OutputMIMEType: "image/jpeg",
	})
	if err != nil {
		return "", err
	}
	if len(resp.Predictions) == 0 || resp.Predictions[0].BytesBase64Encoded == "" {
		return "", ErrImageGenerationFailed
	}
	pred := resp.Predictions[0]
	mimeType := pred.MIMEType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, pred.BytesBase64Encoded), nil
}

// SolveProblem runs a single generation call with an extended reasoning
// budget and returns the raw text.
func (s *Service) SolveProblem(ctx context.Context, problem string) (string, error) {
	req := &gemini.GenerateRequest{
		Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: buildProblemPrompt(problem)}}}},
		GenerationConfig: &gemini.GenerationConfig{
			ThinkingConfig: &gemini.ThinkingConfig{ThinkingBudget: thinkingBudget},
		},
	}
	return s.generateText(ctx, s.proModel, req)
}

// AnalyzeContent condenses text (and optionally an image) into a summary.
// Request parts are [image, text] when an image is present, else [text].
func (s *Service) AnalyzeContent(ctx context.Context, text string, image *media.EncodedImage) (string, error) {
	parts := []gemini.Part{{Text: buildAnalysisPrompt(text, image != nil)}}
	if image != nil {
		parts = []gemini.Part{
			{InlineData: &gemini.InlineData{MIMEType: image.MIMEType, Data: image.Data}},
			{Text: buildAnalysisPrompt(text, true)},
		}
	}
	req := &gemini.GenerateRequest{
		Contents: []gemini.Content{{Role: "user", Parts: parts}},
	}
	return s.generateText(ctx, s.proModel, req)
}

// CorrectSpeech rewrites a speech to MUN standards within the stated
// time limit and returns the raw rewritten text.
func (s *Service) CorrectSpeech(ctx context.Context, speech, timeLimit string) (string, error) {
	return s.generateFromPrompt(ctx, s.proModel, buildSpeechCorrectionPrompt(speech, timeLimit))
}

// CorrectPositionPaper reviews a position-paper draft and returns a
// plain-text list of suggestions (never a rewritten document).
func (s *Service) CorrectPositionPaper(ctx context.Context, paper PositionPaper) (string, error) {
	return s.generateFromPrompt(ctx, s.proModel, buildPositionPaperPrompt(paper))
}

// TopicBreakdown returns a numbered list of guiding research questions
// for a committee topic.
func (s *Service) TopicBreakdown(ctx context.Context, topic string) (string, error) {
	return s.generateFromPrompt(ctx, s.textModel, buildTopicBreakdownPrompt(topic))
}

// StartDebate creates a new interpellation conversation configured with
// the rival-delegation persona, sends the user's speech as the first
// turn, and returns the session handle plus the opening rebuttal.
func (s *Service) StartDebate(ctx context.Context, speech string) (Conversation, string, error) {
	chat := s.client.StartChat(s.proModel, debateSystemInstruction)
	first, err := chat.SendMessage(ctx, speech)
	if err != nil {
		return nil, "", err
	}
	return chat, first, nil
}

// ContinueDebate sends one message on an existing conversation. Behavior
// with a session the remote service has invalidated is whatever error the
// transport surfaces; nothing is validated locally.
func (s *Service) ContinueDebate(ctx context.Context, conv Conversation, message string) (string, error) {
	if conv == nil {
		return "", fmt.Errorf("no active debate conversation")
	}
	return conv.SendMessage(ctx, message)
}

func (s *Service) generateFromPrompt(ctx context.Context, model, prompt string) (string, error) {
	req := &gemini.GenerateRequest{
		Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: prompt}}}},
	}
	return s.generateText(ctx, model, req)
}

func (s *Service) generateText(ctx context.Context, model string, req *gemini.GenerateRequest) (string, error) {
	resp, err := s.client.GenerateContent(ctx, model, req)
	if err != nil {
		return "", err
	}
	return resp.Text()
}
