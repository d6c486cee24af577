package service

import (
	"context"
	"errors"
	"testing"

	"github.com/KevinFernandez21/nasa2025-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func hit(title string, certainty float64) types.DocumentHit {
	return types.DocumentHit{Title: title, Link: "https://example.org/" + title, Certainty: &certainty}
}

func TestGenerateInsightWithOpenAI(t *testing.T) {
	svc := NewInsightService(&fakeChatCompleter{response: "Consolidated insight [1][2]."}, zap.NewNop())

	insight, source := svc.GenerateInsight(context.Background(), "bone loss", []types.DocumentHit{
		hit("one", 0.9), hit("two", 0.8),
	}, 5)

	assert.Equal(t, "openai", source)
	assert.Equal(t, "Consolidated insight [1][2].", insight)
}

func TestGenerateInsightFallsBackWhenEngineFails(t *testing.T) {
	svc := NewInsightService(&fakeChatCompleter{err: errors.New("down")}, zap.NewNop())

	insight, source := svc.GenerateInsight(context.Background(), "bone loss", []types.DocumentHit{
		hit("Skeletal Adaptation", 0.9),
	}, 5)

	assert.Equal(t, "heuristic", source)
	assert.Contains(t, insight, "Skeletal Adaptation")
	assert.Contains(t, insight, "bone loss")
}

func TestGenerateInsightNoPapers(t *testing.T) {
	svc := NewInsightService(&fakeChatCompleter{response: "unused"}, zap.NewNop())

	insight, source := svc.GenerateInsight(context.Background(), "anything", nil, 5)

	assert.Equal(t, "heuristic", source)
	assert.Contains(t, insight, "No relevant papers")
}

func TestGenerateInsightTruncatesToMaxPapers(t *testing.T) {
	svc := NewInsightService(nil, zap.NewNop())

	insight, _ := svc.GenerateInsight(context.Background(), "q", []types.DocumentHit{
		hit("first", 0.9), hit("second", 0.8), hit("third", 0.7),
	}, 2)

	assert.Contains(t, insight, "first")
	assert.Contains(t, insight, "second")
	assert.NotContains(t, insight, "third")
}

func TestReferencesAreNumberedInHitOrder(t *testing.T) {
	certainty := 0.8
	refs := References([]types.DocumentHit{
		{Title: "alpha", Link: "https://example.org/a", Certainty: &certainty},
		{Title: "beta", Link: "https://example.org/b"},
		{Title: "gamma"},
	}, 2)

	require.Len(t, refs, 2)
	assert.Equal(t, 1, refs[0].ID)
	assert.Equal(t, "alpha", refs[0].Title)
	assert.Equal(t, 2, refs[1].ID)
	assert.Nil(t, refs[1].Certainty)
}
