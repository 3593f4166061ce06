package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSummarizeWithoutLLMReturnsPlaceholder(t *testing.T) {
	s := NewSummaryService(nil, zap.NewNop())

	result, err := s.Summarize(context.Background(), "오늘의 영감")

	require.NoError(t, err)
	assert.Equal(t, "영감의 조각", result.Summary)
	assert.NotNil(t, result.KeyPoints)
	assert.NotNil(t, result.ActionItems)
	assert.Empty(t, result.KeyPoints)
	assert.Empty(t, result.ActionItems)
}

func TestSummarizeStripsQuotes(t *testing.T) {
	stub := &stubCompleter{reply: "  \"삶의 무게를 견디는 법\"  "}
	s := &SummaryService{llm: stub, logger: zap.NewNop()}

	result, err := s.Summarize(context.Background(), "내용")

	require.NoError(t, err)
	assert.Equal(t, "삶의 무게를 견디는 법", result.Summary)
}

func TestSummarizePromptCarriesContent(t *testing.T) {
	stub := &stubCompleter{reply: "실패가 남긴 씨앗"}
	s := &SummaryService{llm: stub, logger: zap.NewNop()}

	_, err := s.Summarize(context.Background(), "실패한 프로젝트 회고")

	require.NoError(t, err)
	if assert.Len(t, stub.prompts, 1) {
		assert.Contains(t, stub.prompts[0], "실패한 프로젝트 회고")
	}
}

func TestSummarizePropagatesLLMError(t *testing.T) {
	wantErr := errors.New("overloaded")
	stub := &stubCompleter{err: wantErr}
	s := &SummaryService{llm: stub, logger: zap.NewNop()}

	result, err := s.Summarize(context.Background(), "내용")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, wantErr)
}
