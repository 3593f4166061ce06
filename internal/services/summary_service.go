package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/seojin-dev/as-human-being/backend/pkg/anthropic"
	"go.uber.org/zap"
)

const (
	summaryModel     = "claude-3-5-haiku-latest"
	summaryMaxTokens = 100

	summaryPlaceholder = "영감의 조각"
)

const summaryPromptTemplate = `당신은 영화평론가 이동진처럼 한 줄 코멘트를 작성하는 전문가입니다.

다음 영감을 읽고, 이동진 스타일의 한 줄 코멘트를 작성해주세요.

규칙:
- 15자 이내의 명사형 문장
- 시적이고 함축적인 표현
- 동사가 아닌 명사로 끝날 것
- 따옴표나 부가 설명 없이 코멘트만 출력

예시:
- "삶의 무게를 견디는 법"
- "흔들리지 않는 것들의 힘"
- "실패가 남긴 씨앗"

영감 내용:
"%s"`

// SummaryResult is the one-line summary payload.
type SummaryResult struct {
	Summary     string   `json:"summary"`
	KeyPoints   []string `json:"keyPoints"`
	ActionItems []string `json:"actionItems"`
}

// SummaryService generates a one-line Korean summary for post content.
type SummaryService struct {
	llm    completer
	logger *zap.Logger
}

// NewSummaryService creates a new SummaryService. client may be nil; the
// service then answers with a fixed placeholder.
func NewSummaryService(client *anthropic.Client, logger *zap.Logger) *SummaryService {
	s := &SummaryService{logger: logger}
	if client != nil {
		s.llm = client
	}
	return s
}

// Summarize returns a one-line summary of the content. Without a configured
// LLM it returns a placeholder; an LLM failure is returned to the caller.
func (s *SummaryService) Summarize(ctx context.Context, content string) (*SummaryResult, error) {
	if s.llm == nil {
		return &SummaryResult{
			Summary:     summaryPlaceholder,
			KeyPoints:   []string{},
			ActionItems: []string{},
		}, nil
	}

	reply, err := s.llm.Complete(ctx, summaryModel, summaryMaxTokens, fmt.Sprintf(summaryPromptTemplate, content))
	if err != nil {
		s.logger.Error("summary LLM call failed", zap.Error(err))
		return nil, err
	}

	summary := strings.Trim(strings.TrimSpace(reply), `"'`)
	return &SummaryResult{
		Summary:     strings.TrimSpace(summary),
		KeyPoints:   []string{},
		ActionItems: []string{},
	}, nil
}
