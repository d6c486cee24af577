package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const insightSystemPrompt = "You are a scientific expert who synthesizes information from multiple academic papers."

// InsightService consolidates the top search hits into a single insight with
// numbered references.
type InsightService struct {
	openai ChatCompleter
	logger *zap.Logger
}

func NewInsightService(openai ChatCompleter, logger *zap.Logger) *InsightService {
	return &InsightService{
		openai: openai,
		logger: logger,
	}
}

// GenerateInsight analyzes up to maxPapers hits and returns the insight text
// plus the engine that produced it ("openai" or "heuristic"). It never fails:
// when the engine is unavailable a heuristic summary is produced instead.
func (s *InsightService) GenerateInsight(ctx context.Context, query string, papers []types.DocumentHit, maxPapers int) (string, string) {
	if maxPapers > 0 && len(papers) > maxPapers {
		papers = papers[:maxPapers]
	}

	if len(papers) == 0 {
		return "No relevant papers were found to generate an insight.", "heuristic"
	}

	if s.openai != nil {
		if insight := s.generateWithOpenAI(ctx, query, papers); insight != "" {
			return insight, "openai"
		}
	}

	return fallbackInsight(query, papers), "heuristic"
}

// References numbers the analyzed papers in hit order, matching the [1], [2]
// citations the prompt asks the engine to emit.
func References(papers []types.DocumentHit, maxPapers int) []types.Reference {
	if maxPapers > 0 && len(papers) > maxPapers {
		papers = papers[:maxPapers]
	}

	references := make([]types.Reference, 0, len(papers))
	for idx, paper := range papers {
		references = append(references, types.Reference{
			ID:        idx + 1,
			Title:     paper.Title,
			Link:      paper.Link,
			Certainty: paper.Certainty,
		})
	}
	return references
}

func (s *InsightService) generateWithOpenAI(ctx context.Context, query string, papers []types.DocumentHit) string {
	prompt := fmt.Sprintf(`You are a scientific expert analyzing academic literature.

User search: %q

The %d most relevant papers found are listed below:

%s

Your task is to generate a consolidated insight that:
1. Identifies the main themes and findings shared across these papers
2. Highlights emerging trends or patterns
3. Points out areas of convergence or divergence in the research
4. Is concise but informative (250 words maximum)
5. Uses an academic yet accessible tone, citing papers as [1], [2], etc.

Generate the insight:`, query, len(papers), papersContext(papers))

	response, err := s.openai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       openai.GPT4oMini,
		Temperature: 0.4,
		MaxTokens:   500,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: insightSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		s.logger.Warn("OpenAI insight generation failed", zap.Error(err))
		return ""
	}
	if len(response.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(response.Choices[0].Message.Content)
}

func papersContext(papers []types.DocumentHit) string {
	var sb strings.Builder
	for idx, paper := range papers {
		summary := paper.FullAbstract
		if summary == "" {
			summary = paper.ContentPreview
		}
		sb.WriteString(fmt.Sprintf("Paper %d:\nTitle: %s\nRelevance: %s\nSummary: %.500s\n\n",
			idx+1, paper.Title, certaintyString(paper.Certainty), summary))
	}
	return sb.String()
}

func fallbackInsight(query string, papers []types.DocumentHit) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d relevant papers for %q.\n\nMain works:\n", len(papers), query))
	for idx, paper := range papers {
		sb.WriteString(fmt.Sprintf("%d. %s", idx+1, paper.Title))
		if paper.Certainty != nil {
			sb.WriteString(fmt.Sprintf(" (relevance: %.2f%%)", *paper.Certainty*100))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func certaintyString(certainty *float64) string {
	if certainty == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", *certainty*100)
}
