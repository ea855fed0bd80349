// Package chat orchestrates one interactive conversation: document
// ingestion, prompt assembly, LLM round-trips, and the session log.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.uber.org/zap"

	"github.com/superchatai/superchat/llm"
	"github.com/superchatai/superchat/prompts"
	"github.com/superchatai/superchat/session"
	"github.com/superchatai/superchat/youtube"
)

// ErrGroundingRequired is returned when posting is attempted before a
// grounding document has been loaded in a mode that requires one. Callers
// should treat it as a disabled input, not a crash.
var ErrGroundingRequired = errors.New("grounding document required before chatting")

// MetadataFetcher resolves a watch URL to video metadata.
type MetadataFetcher interface {
	Fetch(ctx context.Context, watchURL string) (*youtube.Video, error)
}

// TranscriptFetcher retrieves timed captions for a video id, honoring the
// preferred language order.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) ([]youtube.Caption, error)
}

// DocumentIngestor produces bounded grounding text from raw source bytes.
type DocumentIngestor interface {
	Ingest(ctx context.Context, data []byte) (text string, truncated bool, err error)
}

// Config carries the per-session knobs surfaced in settings.
type Config struct {
	Languages        []string // preferred caption languages, in order
	MaxTokens        int
	Temperature      float64
	RequireGrounding bool
}

// Service drives a single conversation session. One user action is processed
// at a time; the LLM round-trip is the only long-running step.
type Service struct {
	llmClient   llm.LLMClient
	ingestor    DocumentIngestor
	metadata    MetadataFetcher
	transcripts TranscriptFetcher
	session     *session.Session
	config      Config
}

func New(
	llmClient llm.LLMClient,
	ingestor DocumentIngestor,
	metadata MetadataFetcher,
	transcripts TranscriptFetcher,
	config Config,
) *Service {
	if config.MaxTokens <= 0 {
		config.MaxTokens = 2048
	}
	if config.Temperature <= 0 {
		config.Temperature = 0.7
	}
	if len(config.Languages) == 0 {
		config.Languages = []string{"en"}
	}
	return &Service{
		llmClient:   llmClient,
		ingestor:    ingestor,
		metadata:    metadata,
		transcripts: transcripts,
		session:     session.New(config.RequireGrounding),
		config:      config,
	}
}

// Session exposes the conversation state for display.
func (s *Service) Session() *session.Session {
	return s.session
}

// LoadPDF ingests PDF bytes and grounds the session on the result. A second
// load in the same session is a no-op. Ingestion failures leave the session
// untouched. The returned flag reports non-fatal truncation.
func (s *Service) LoadPDF(ctx context.Context, data []byte, instructions string) (bool, error) {
	if _, ok := s.session.Grounding(); ok {
		logger.Info("Grounding already loaded, ignoring PDF upload")
		return false, nil
	}

	text, truncated, err := s.ingestor.Ingest(ctx, data)
	if err != nil {
		return false, fmt.Errorf("ingesting pdf: %w", err)
	}

	if instructions == "" {
		instructions, err = prompts.DefaultPDFInstructions()
		if err != nil {
			return false, err
		}
	}

	s.session.LoadGrounding(session.Grounding{
		Kind:         session.GroundingPDF,
		Text:         text,
		Instructions: instructions,
		Truncated:    truncated,
	})

	logger.Info("PDF grounded",
		zap.Int("chars", len(text)),
		zap.Bool("truncated", truncated))
	return truncated, nil
}

// LoadYouTube fetches metadata and a transcript for the video, asks the LLM
// for a structured summary of it, and grounds the session on that summary.
// The summary becomes the session's first assistant message; fragments are
// forwarded to onChunk as they stream. Fetch or LLM failures leave the
// session untouched.
func (s *Service) LoadYouTube(ctx context.Context, watchURL string, onChunk func(string) error) (*youtube.Video, error) {
	if _, ok := s.session.Grounding(); ok {
		logger.Info("Grounding already loaded, ignoring video URL")
		return nil, nil
	}

	videoID, err := youtube.ParseVideoID(watchURL)
	if err != nil {
		return nil, err
	}

	metaTask := async.Go(func() (*youtube.Video, error) {
		return s.metadata.Fetch(ctx, watchURL)
	})
	captionsTask := async.Go(func() ([]youtube.Caption, error) {
		return s.transcripts.Fetch(ctx, videoID, s.config.Languages)
	})

	video, err := async.Await(metaTask)
	if err != nil {
		logger.Error("Failed to fetch video metadata", zap.String("videoId", videoID), zap.Error(err))
		return nil, err
	}

	captions, err := async.Await(captionsTask)
	if err != nil {
		logger.Error("Failed to fetch transcript", zap.String("videoId", videoID), zap.Error(err))
		return nil, err
	}

	details, err := prompts.RenderVideoDetails(prompts.VideoDetailsData{
		Title:       video.Title,
		Author:      video.Author,
		Length:      video.Length,
		Views:       video.Views,
		Description: video.Description,
		Keywords:    video.Keywords,
	})
	if err != nil {
		return nil, err
	}

	prompt, err := prompts.RenderTranscriptSummaryPrompt(prompts.TranscriptSummaryData{
		Details:    details,
		Transcript: youtube.FormatSRT(captions),
	})
	if err != nil {
		return nil, err
	}

	summary, err := s.generate(ctx, []llm.Message{{Role: "user", Content: prompt}}, onChunk)
	if err != nil {
		return nil, err
	}

	s.session.LoadGrounding(session.Grounding{
		Kind: session.GroundingTranscript,
		Text: summary,
	})
	s.session.AddAssistantMessage(summary)

	logger.Info("Transcript grounded",
		zap.String("videoId", videoID),
		zap.Int("captions", len(captions)),
		zap.Int("summaryChars", len(summary)))
	return video, nil
}

// Send posts a user message and streams the assistant reply. The stored
// assistant message is exactly the concatenation of the fragments delivered
// to onChunk. When the session is grounded on a PDF, the outgoing prompt
// wraps the user text with the grounding document; the stored user message
// stays verbatim.
func (s *Service) Send(ctx context.Context, userText string, onChunk func(string) error) (string, error) {
	if !s.session.CanPost() {
		return "", ErrGroundingRequired
	}

	effective := userText
	if g, ok := s.session.Grounding(); ok && g.Kind == session.GroundingPDF {
		wrapped, err := prompts.RenderPDFGroundingPrompt(prompts.PDFGroundingData{
			Instructions: g.Instructions,
			Document:     g.Text,
			Question:     userText,
		})
		if err != nil {
			return "", err
		}
		effective = wrapped
	}

	history := s.history()
	s.session.AddUserMessage(userText)

	messages := append(history, llm.Message{Role: "user", Content: effective})
	reply, err := s.generate(ctx, messages, onChunk)
	if err != nil {
		logger.Error("Failed to run inference", zap.Error(err))
		return "", err
	}

	s.session.AddAssistantMessage(reply)
	return reply, nil
}

// Reset clears the conversation so a new grounding document can be loaded.
func (s *Service) Reset() {
	s.session.Reset()
}

// generate runs one LLM round-trip, accumulating streamed fragments and
// forwarding each to onChunk. Cancellation is honored at every fragment
// boundary.
func (s *Service) generate(ctx context.Context, messages []llm.Message, onChunk func(string) error) (string, error) {
	var inference strings.Builder
	err := s.llmClient.GenerateInference(
		ctx, messages,
		func(chunk string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inference.WriteString(chunk)
			if onChunk != nil {
				return onChunk(chunk)
			}
			return nil
		},
		llm.WithMaxTokens(s.config.MaxTokens),
		llm.WithTemperature(s.config.Temperature),
	)
	if err != nil {
		return "", err
	}
	return inference.String(), nil
}

func (s *Service) history() []llm.Message {
	msgs := s.session.Messages()
	history := make([]llm.Message, len(msgs))
	for i, m := range msgs {
		history[i] = llm.Message{Role: string(m.Role), Content: m.Content}
	}
	return history
}
