package service

import (
	"context"
	"errors"
	"strings"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/utils"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrEmptyText is returned when a title is requested for blank input.
var ErrEmptyText = errors.New("text cannot be empty")

const titlePrompt = "You are an expert scientific editor. Generate a concise, publication-style title (max 12 words) for the following text. Answer with the title only.\n\n"

// ContentGenerator is the Gemini-shaped engine: prompt in, text out.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// ChatCompleter is the subset of the OpenAI client the service needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// TitleService generates editorial titles, trying Gemini first, then OpenAI,
// and falling back to a heuristic when no engine is configured or both fail.
type TitleService struct {
	gemini ContentGenerator
	openai ChatCompleter
	logger *zap.Logger
}

func NewTitleService(gemini ContentGenerator, openai ChatCompleter, logger *zap.Logger) *TitleService {
	return &TitleService{
		gemini: gemini,
		openai: openai,
		logger: logger,
	}
}

// GenerateTitle returns the title and the name of the engine that produced it.
func (s *TitleService) GenerateTitle(ctx context.Context, text string) (string, string, error) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return "", "", ErrEmptyText
	}

	if s.gemini != nil {
		if title := s.generateWithGemini(ctx, cleaned); title != "" {
			return title, "gemini", nil
		}
	}

	if s.openai != nil {
		if title := s.generateWithOpenAI(ctx, cleaned); title != "" {
			return title, "openai", nil
		}
	}

	return utils.HeuristicTitle(cleaned), "heuristic", nil
}

func (s *TitleService) generateWithGemini(ctx context.Context, text string) string {
	response, err := s.gemini.GenerateContent(ctx, titlePrompt+text)
	if err != nil {
		s.logger.Warn("Gemini title generation failed", zap.Error(err))
		return ""
	}
	return utils.SanitizeTitle(response)
}

func (s *TitleService) generateWithOpenAI(ctx context.Context, text string) string {
	response, err := s.openai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT4oMini,
		Temperature: 0.3,
		MaxTokens:   40,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: titlePrompt + text},
		},
	})
	if err != nil {
		s.logger.Warn("OpenAI title generation failed", zap.Error(err))
		return ""
	}
	if len(response.Choices) == 0 {
		return ""
	}
	return utils.SanitizeTitle(response.Choices[0].Message.Content)
}
