package services

import (
	"context"
	"sort"

	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/seojin-dev/as-human-being/backend/internal/monitoring"
	"github.com/seojin-dev/as-human-being/backend/internal/repositories"
	"go.uber.org/zap"
)

// Recommendation result types
const (
	RecommendationTypeRecent       = "recent"
	RecommendationTypePersonalized = "personalized"
	RecommendationTypeError        = "error"
)

const (
	recommendationLimit = 6
	interactionWindow   = 20
	topTagLimit         = 5
)

// Recommendations is the bounded post selection returned to a viewer.
type Recommendations struct {
	Inspirations []models.EnrichedInspiration `json:"inspirations"`
	Type         string                       `json:"type"`
	BasedOnTags  []string                     `json:"basedOnTags,omitempty"`
}

// RecommendationCache caches per-viewer recommendation results.
type RecommendationCache interface {
	Get(ctx context.Context, viewerID string) (*Recommendations, bool)
	Set(ctx context.Context, viewerID string, recs *Recommendations)
	Invalidate(ctx context.Context, viewerID string)
}

// RecommendationService selects which inspirations to surface to a viewer.
// Personalization is tag-frequency over the viewer's recent resonates and
// bookmarks; viewers without history get the recent public feed.
type RecommendationService struct {
	inspirationRepo repositories.InspirationRepository
	resonateRepo    repositories.ResonateRepository
	bookmarkRepo    repositories.BookmarkRepository
	profileRepo     repositories.ProfileRepository
	cache           RecommendationCache
	logger          *zap.Logger
}

// NewRecommendationService creates a new RecommendationService. cache may be
// nil, in which case every request recomputes.
func NewRecommendationService(
	inspirationRepo repositories.InspirationRepository,
	resonateRepo repositories.ResonateRepository,
	bookmarkRepo repositories.BookmarkRepository,
	profileRepo repositories.ProfileRepository,
	cache RecommendationCache,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		inspirationRepo: inspirationRepo,
		resonateRepo:    resonateRepo,
		bookmarkRepo:    bookmarkRepo,
		profileRepo:     profileRepo,
		cache:           cache,
		logger:          logger,
	}
}

// Recommend returns up to 6 inspirations for the viewer. viewerID may be
// empty for anonymous visitors. Storage failures degrade to an empty result
// with type "error"; this method never fails its caller.
func (s *RecommendationService) Recommend(ctx context.Context, viewerID string) *Recommendations {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, viewerID); ok {
			monitoring.RecommendationCacheHits.Inc()
			return cached
		}
	}

	recs := s.compute(ctx, viewerID)
	monitoring.RecommendationsServed.WithLabelValues(recs.Type).Inc()

	if s.cache != nil && recs.Type != RecommendationTypeError {
		s.cache.Set(ctx, viewerID, recs)
	}
	return recs
}

func (s *RecommendationService) compute(ctx context.Context, viewerID string) *Recommendations {
	if viewerID == "" {
		return s.recentFeed(ctx, "")
	}

	resonates, err := s.resonateRepo.ListRecentByUser(ctx, viewerID, interactionWindow)
	if err != nil {
		return s.degraded("loading recent resonates", err)
	}
	bookmarks, err := s.bookmarkRepo.ListRecentByUser(ctx, viewerID, interactionWindow)
	if err != nil {
		return s.degraded("loading recent bookmarks", err)
	}

	// Merge tags from both interaction sets into one frequency table. A tag
	// counts once per interaction it appears on; interactions of different
	// kinds on the same post both count.
	counts := make(map[string]int)
	var firstSeen []string
	var interactedIDs []string

	addInteraction := func(inspirationID string, inspiration *models.Inspiration) {
		interactedIDs = append(interactedIDs, inspirationID)
		if inspiration == nil {
			return
		}
		for _, tag := range inspiration.Tags {
			if counts[tag] == 0 {
				firstSeen = append(firstSeen, tag)
			}
			counts[tag]++
		}
	}
	for _, r := range resonates {
		addInteraction(r.InspirationID, r.Inspiration)
	}
	for _, b := range bookmarks {
		addInteraction(b.InspirationID, b.Inspiration)
	}

	// Rank by frequency descending. Stable sort keeps first-encountered
	// order for equal counts; no secondary key is defined.
	topTags := append([]string(nil), firstSeen...)
	sort.SliceStable(topTags, func(i, j int) bool {
		return counts[topTags[i]] > counts[topTags[j]]
	})
	if len(topTags) > topTagLimit {
		topTags = topTags[:topTagLimit]
	}

	if len(topTags) == 0 {
		return s.recentFeed(ctx, viewerID)
	}

	candidates, err := s.inspirationRepo.ListPublicByTagOverlap(ctx, topTags, viewerID, interactedIDs, recommendationLimit)
	if err != nil {
		return s.degraded("loading tag-overlap candidates", err)
	}
	enriched, err := s.enrich(ctx, candidates)
	if err != nil {
		return s.degraded("enriching recommendations", err)
	}

	return &Recommendations{
		Inspirations: enriched,
		Type:         RecommendationTypePersonalized,
		BasedOnTags:  topTags,
	}
}

func (s *RecommendationService) recentFeed(ctx context.Context, excludeUserID string) *Recommendations {
	inspirations, err := s.inspirationRepo.ListRecentPublic(ctx, recommendationLimit, excludeUserID)
	if err != nil {
		return s.degraded("loading recent public inspirations", err)
	}
	enriched, err := s.enrich(ctx, inspirations)
	if err != nil {
		return s.degraded("enriching recent feed", err)
	}
	return &Recommendations{Inspirations: enriched, Type: RecommendationTypeRecent}
}

// enrich resolves each inspiration to exactly one author and attaches the
// resonate count.
func (s *RecommendationService) enrich(ctx context.Context, inspirations []models.Inspiration) ([]models.EnrichedInspiration, error) {
	ids := make([]string, len(inspirations))
	authorIDs := make([]string, 0, len(inspirations))
	seen := make(map[string]bool)
	for i, insp := range inspirations {
		ids[i] = insp.ID
		if !seen[insp.UserID] {
			seen[insp.UserID] = true
			authorIDs = append(authorIDs, insp.UserID)
		}
	}

	authors, err := s.profileRepo.GetProfilesByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	resonateCounts, err := s.resonateRepo.CountsForInspirations(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedInspiration, len(inspirations))
	for i, insp := range inspirations {
		author := authors[insp.UserID]
		enriched[i] = models.EnrichedInspiration{
			Inspiration:   insp,
			Author:        author.ToCompact(),
			ResonateCount: resonateCounts[insp.ID],
		}
	}
	return enriched, nil
}

func (s *RecommendationService) degraded(stage string, err error) *Recommendations {
	s.logger.Error("recommendation degraded to empty result",
		zap.String("stage", stage), zap.Error(err))
	return &Recommendations{
		Inspirations: []models.EnrichedInspiration{},
		Type:         RecommendationTypeError,
	}
}
