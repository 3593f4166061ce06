package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seojin-dev/as-human-being/backend/internal/monitoring"
	"github.com/seojin-dev/as-human-being/backend/pkg/anthropic"
	"go.uber.org/zap"
)

const (
	tagModel     = "claude-3-5-haiku-latest"
	tagMaxTokens = 100
	maxTags      = 5
	maxTagLength = 20
)

var popularTags = []string{
	"창업", "디자인", "개발", "글쓰기", "마케팅", "투자", "성장", "통찰",
	"리더십", "팀빌딩", "실패", "성공", "UX", "제품", "철학", "클린코드",
	"커리어", "학습", "창의성", "혁신", "비즈니스", "스타트업", "데이터",
	"AI", "기술", "문화", "예술", "음악", "여행", "건강", "관계", "소통",
}

const tagPromptTemplate = `다음 영감/인사이트에 어울리는 태그를 3-5개 추천해주세요.
기존 인기 태그 목록: %s

가능하면 기존 태그에서 선택하되, 적합한 게 없으면 새로운 태그를 만들어도 됩니다.
태그만 쉼표로 구분해서 응답해주세요 (설명 없이).

영감 내용:
"%s"`

// keywordGroups drives the deterministic fallback. Declaration order is the
// output order; each matching group contributes its canonical tag once.
var keywordGroups = []struct {
	Tag      string
	Keywords []string
}{
	{"창업", []string{"창업", "스타트업", "사업", "회사", "대표"}},
	{"디자인", []string{"디자인", "UI", "UX", "색상", "레이아웃"}},
	{"개발", []string{"개발", "코드", "프로그래밍", "기술", "엔지니어"}},
	{"마케팅", []string{"마케팅", "광고", "브랜드", "고객", "판매"}},
	{"투자", []string{"투자", "자금", "펀딩", "투자자", "벤처"}},
	{"성장", []string{"성장", "발전", "배움", "학습", "경험"}},
	{"리더십", []string{"리더", "리더십", "팀", "조직", "관리"}},
	{"실패", []string{"실패", "실수", "망", "어려움", "극복"}},
	{"통찰", []string{"통찰", "깨달음", "인사이트", "생각", "관점"}},
}

// completer is the LLM surface the tag and summary services consume.
type completer interface {
	Complete(ctx context.Context, model string, maxTokens int, prompt string) (string, error)
}

// TagService proposes up to 5 topical tags for post content. It prefers the
// LLM and degrades to keyword matching; it never fails its caller.
type TagService struct {
	llm    completer
	logger *zap.Logger
}

// NewTagService creates a new TagService. client may be nil when no API key
// is configured; the service then answers from the keyword fallback only.
func NewTagService(client *anthropic.Client, logger *zap.Logger) *TagService {
	s := &TagService{logger: logger}
	if client != nil {
		s.llm = client
	}
	return s
}

// SuggestTags returns up to 5 tag suggestions for the given content.
func (s *TagService) SuggestTags(ctx context.Context, content string) []string {
	if s.llm == nil {
		monitoring.TagSuggestionFallbacks.Inc()
		return fallbackTags(content)
	}

	prompt := fmt.Sprintf(tagPromptTemplate, strings.Join(popularTags, ", "), content)
	reply, err := s.llm.Complete(ctx, tagModel, tagMaxTokens, prompt)
	if err != nil {
		s.logger.Warn("tag suggestion LLM call failed, using keyword fallback", zap.Error(err))
		monitoring.TagSuggestionFallbacks.Inc()
		return fallbackTags(content)
	}
	return parseTagReply(reply)
}

// parseTagReply splits a comma-separated reply, trims each entry, drops
// empty and over-length ones and caps the list at 5.
func parseTagReply(reply string) []string {
	tags := make([]string, 0, maxTags)
	for _, part := range strings.Split(reply, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" || utf8.RuneCountInString(tag) > maxTagLength {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == maxTags {
			break
		}
	}
	return tags
}

// fallbackTags scans the content for the fixed keyword groups,
// case-insensitively. Matching groups contribute their canonical tag in
// declaration order.
func fallbackTags(content string) []string {
	contentLower := strings.ToLower(content)
	matched := make([]string, 0, maxTags)

	for _, group := range keywordGroups {
		for _, keyword := range group.Keywords {
			if strings.Contains(contentLower, strings.ToLower(keyword)) {
				matched = append(matched, group.Tag)
				break
			}
		}
		if len(matched) == maxTags {
			break
		}
	}
	return matched
}
