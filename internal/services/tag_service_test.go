package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubCompleter struct {
	reply   string
	err     error
	prompts []string
}

func (c *stubCompleter) Complete(_ context.Context, _ string, _ int, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

func TestSuggestTagsWithoutLLMUsesKeywordFallback(t *testing.T) {
	s := NewTagService(nil, zap.NewNop())

	tags := s.SuggestTags(context.Background(), "스타트업 창업 이야기")

	assert.Equal(t, []string{"창업"}, tags)
}

func TestSuggestTagsFallbackDeclarationOrder(t *testing.T) {
	s := NewTagService(nil, zap.NewNop())

	// 투자 appears before 디자인 in the content but 디자인 comes first in
	// the keyword table, so the output follows the table.
	tags := s.SuggestTags(context.Background(), "투자자를 만나 디자인 시안을 보여줬다")

	assert.Equal(t, []string{"디자인", "투자"}, tags)
}

func TestSuggestTagsFallbackCaseInsensitive(t *testing.T) {
	s := NewTagService(nil, zap.NewNop())

	tags := s.SuggestTags(context.Background(), "ui 개선 작업")

	assert.Equal(t, []string{"디자인"}, tags)
}

func TestSuggestTagsFallbackCapsAtFive(t *testing.T) {
	s := NewTagService(nil, zap.NewNop())

	content := "창업하면서 디자인과 개발, 마케팅, 투자 유치, 성장, 리더십을 모두 경험했다"
	tags := s.SuggestTags(context.Background(), content)

	assert.Len(t, tags, 5)
	assert.Equal(t, []string{"창업", "디자인", "개발", "마케팅", "투자"}, tags)
}

func TestSuggestTagsFallbackNoMatch(t *testing.T) {
	s := NewTagService(nil, zap.NewNop())

	tags := s.SuggestTags(context.Background(), "오늘 날씨가 좋다")

	assert.Empty(t, tags)
}

func TestSuggestTagsParsesLLMReply(t *testing.T) {
	stub := &stubCompleter{reply: " 창업 ,, 성장 , " + strings.Repeat("가", 21) + ", 통찰"}
	s := &TagService{llm: stub, logger: zap.NewNop()}

	tags := s.SuggestTags(context.Background(), "어떤 내용")

	// Entries are trimmed; empty and over-length ones are dropped.
	assert.Equal(t, []string{"창업", "성장", "통찰"}, tags)
}

func TestSuggestTagsCapsLLMReplyAtFive(t *testing.T) {
	stub := &stubCompleter{reply: "a, b, c, d, e, f, g"}
	s := &TagService{llm: stub, logger: zap.NewNop()}

	tags := s.SuggestTags(context.Background(), "어떤 내용")

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, tags)
}

func TestSuggestTagsPromptCarriesContentAndPopularTags(t *testing.T) {
	stub := &stubCompleter{reply: "창업"}
	s := &TagService{llm: stub, logger: zap.NewNop()}

	s.SuggestTags(context.Background(), "첫 제품을 출시했다")

	if assert.Len(t, stub.prompts, 1) {
		assert.Contains(t, stub.prompts[0], "첫 제품을 출시했다")
		assert.Contains(t, stub.prompts[0], "창업, 디자인, 개발")
	}
}

func TestSuggestTagsFallsBackOnLLMError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("rate limited")}
	s := &TagService{llm: stub, logger: zap.NewNop()}

	tags := s.SuggestTags(context.Background(), "리더십에 대한 메모")

	assert.Equal(t, []string{"리더십"}, tags)
}
