package services

import (
	"context"
	"errors"
	"sort"

	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/seojin-dev/as-human-being/backend/internal/repositories"
	"gorm.io/gorm"
)

var errStoreDown = errors.New("store down")

// --- inspiration repo fake ---

type fakeInspirationRepo struct {
	inspirations map[string]*models.Inspiration
	fail         bool
}

func newFakeInspirationRepo() *fakeInspirationRepo {
	return &fakeInspirationRepo{inspirations: make(map[string]*models.Inspiration)}
}

func (r *fakeInspirationRepo) add(insp models.Inspiration) {
	cp := insp
	r.inspirations[insp.ID] = &cp
}

func (r *fakeInspirationRepo) CreateInspiration(_ context.Context, insp *models.Inspiration) error {
	if r.fail {
		return errStoreDown
	}
	r.inspirations[insp.ID] = insp
	return nil
}

func (r *fakeInspirationRepo) GetInspirationByID(_ context.Context, id string) (*models.Inspiration, error) {
	if r.fail {
		return nil, errStoreDown
	}
	insp, ok := r.inspirations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return insp, nil
}

func (r *fakeInspirationRepo) UpdateInspiration(_ context.Context, insp *models.Inspiration) error {
	r.inspirations[insp.ID] = insp
	return nil
}

func (r *fakeInspirationRepo) DeleteInspiration(_ context.Context, id string) error {
	delete(r.inspirations, id)
	return nil
}

func (r *fakeInspirationRepo) ListPublic(_ context.Context, filter repositories.InspirationListFilter) ([]models.Inspiration, error) {
	if r.fail {
		return nil, errStoreDown
	}
	return r.sorted(func(insp *models.Inspiration) bool { return insp.IsPublic }, filter.Limit), nil
}

func (r *fakeInspirationRepo) ListRecentPublic(_ context.Context, limit int, excludeUserID string) ([]models.Inspiration, error) {
	if r.fail {
		return nil, errStoreDown
	}
	return r.sorted(func(insp *models.Inspiration) bool {
		return insp.IsPublic && (excludeUserID == "" || insp.UserID != excludeUserID)
	}, limit), nil
}

func (r *fakeInspirationRepo) ListPublicByTagOverlap(_ context.Context, tags []string, excludeUserID string, excludeIDs []string, limit int) ([]models.Inspiration, error) {
	if r.fail {
		return nil, errStoreDown
	}
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	tagSet := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tagSet[tag] = true
	}
	return r.sorted(func(insp *models.Inspiration) bool {
		if !insp.IsPublic || insp.UserID == excludeUserID || excluded[insp.ID] {
			return false
		}
		for _, tag := range insp.Tags {
			if tagSet[tag] {
				return true
			}
		}
		return false
	}, limit), nil
}

func (r *fakeInspirationRepo) ListByUser(_ context.Context, userID string) ([]models.Inspiration, error) {
	return r.sorted(func(insp *models.Inspiration) bool { return insp.UserID == userID }, 0), nil
}

func (r *fakeInspirationRepo) sorted(keep func(*models.Inspiration) bool, limit int) []models.Inspiration {
	var result []models.Inspiration
	for _, insp := range r.inspirations {
		if keep(insp) {
			result = append(result, *insp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// --- resonate repo fake ---

type fakeResonateRepo struct {
	rows         []models.Resonate
	inspirations *fakeInspirationRepo
	fail         bool
}

func newFakeResonateRepo(inspirations *fakeInspirationRepo) *fakeResonateRepo {
	return &fakeResonateRepo{inspirations: inspirations}
}

func (r *fakeResonateRepo) CreateIfAbsent(_ context.Context, resonate *models.Resonate) (bool, error) {
	if r.fail {
		return false, errStoreDown
	}
	for _, row := range r.rows {
		if row.UserID == resonate.UserID && row.InspirationID == resonate.InspirationID {
			return false, nil
		}
	}
	r.rows = append(r.rows, *resonate)
	return true, nil
}

func (r *fakeResonateRepo) DeleteByUserAndInspiration(_ context.Context, userID, inspirationID string) (bool, error) {
	if r.fail {
		return false, errStoreDown
	}
	for i, row := range r.rows {
		if row.UserID == userID && row.InspirationID == inspirationID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeResonateRepo) HasUserResonated(_ context.Context, userID, inspirationID string) (bool, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.InspirationID == inspirationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeResonateRepo) CountByInspiration(_ context.Context, inspirationID string) (int64, error) {
	if r.fail {
		return 0, errStoreDown
	}
	var count int64
	for _, row := range r.rows {
		if row.InspirationID == inspirationID {
			count++
		}
	}
	return count, nil
}

func (r *fakeResonateRepo) CountsForInspirations(_ context.Context, inspirationIDs []string) (map[string]int64, error) {
	result := make(map[string]int64)
	for _, id := range inspirationIDs {
		count, _ := r.CountByInspiration(context.Background(), id)
		if count > 0 {
			result[id] = count
		}
	}
	return result, nil
}

func (r *fakeResonateRepo) ListRecentByUser(_ context.Context, userID string, limit int) ([]models.Resonate, error) {
	if r.fail {
		return nil, errStoreDown
	}
	var result []models.Resonate
	for _, row := range r.rows {
		if row.UserID == userID {
			row.Inspiration = r.inspirations.inspirations[row.InspirationID]
			result = append(result, row)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- bookmark repo fake ---

type fakeBookmarkRepo struct {
	rows         []models.Bookmark
	inspirations *fakeInspirationRepo
	fail         bool
}

func newFakeBookmarkRepo(inspirations *fakeInspirationRepo) *fakeBookmarkRepo {
	return &fakeBookmarkRepo{inspirations: inspirations}
}

func (r *fakeBookmarkRepo) CreateIfAbsent(_ context.Context, bookmark *models.Bookmark) (bool, error) {
	if r.fail {
		return false, errStoreDown
	}
	for _, row := range r.rows {
		if row.UserID == bookmark.UserID && row.InspirationID == bookmark.InspirationID {
			return false, nil
		}
	}
	r.rows = append(r.rows, *bookmark)
	return true, nil
}

func (r *fakeBookmarkRepo) DeleteByUserAndInspiration(_ context.Context, userID, inspirationID string) (bool, error) {
	if r.fail {
		return false, errStoreDown
	}
	for i, row := range r.rows {
		if row.UserID == userID && row.InspirationID == inspirationID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookmarkRepo) HasUserBookmarked(_ context.Context, userID, inspirationID string) (bool, error) {
	for _, row := range r.rows {
		if row.UserID == userID && row.InspirationID == inspirationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookmarkRepo) ListRecentByUser(_ context.Context, userID string, limit int) ([]models.Bookmark, error) {
	if r.fail {
		return nil, errStoreDown
	}
	var result []models.Bookmark
	for _, row := range r.rows {
		if row.UserID == userID {
			row.Inspiration = r.inspirations.inspirations[row.InspirationID]
			result = append(result, row)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *fakeBookmarkRepo) ListByUser(ctx context.Context, userID string) ([]models.Bookmark, error) {
	return r.ListRecentByUser(ctx, userID, 0)
}

// --- comment repo fake ---

type fakeCommentRepo struct {
	comments []models.Comment
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *fakeCommentRepo) ListByInspiration(_ context.Context, inspirationID string) ([]models.Comment, error) {
	var result []models.Comment
	for _, comment := range r.comments {
		if comment.InspirationID == inspirationID {
			result = append(result, comment)
		}
	}
	return result, nil
}

func (r *fakeCommentRepo) CountByInspiration(_ context.Context, inspirationID string) (int64, error) {
	var count int64
	for _, comment := range r.comments {
		if comment.InspirationID == inspirationID {
			count++
		}
	}
	return count, nil
}

// --- notification repo fake ---

type fakeNotificationRepo struct {
	notifications []models.Notification
}

func (r *fakeNotificationRepo) CreateNotification(_ context.Context, notification *models.Notification) error {
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID string, _ int) ([]models.Notification, error) {
	var result []models.Notification
	for _, n := range r.notifications {
		if n.UserID == recipientID {
			result = append(result, n)
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(_ context.Context, recipientID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(_ context.Context, recipientID string) error {
	for i := range r.notifications {
		if r.notifications[i].UserID == recipientID {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

// --- profile repo fake ---

type fakeProfileRepo struct {
	profiles map[string]models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]models.Profile)}
}

func (r *fakeProfileRepo) CreateProfile(profile *models.Profile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeProfileRepo) GetProfileByID(id string) (*models.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (r *fakeProfileRepo) GetProfileByEmail(email string) (*models.Profile, error) {
	for _, profile := range r.profiles {
		if profile.Email == email {
			return &profile, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) GetProfilesByIDs(ids []string) (map[string]models.Profile, error) {
	result := make(map[string]models.Profile)
	for _, id := range ids {
		if profile, ok := r.profiles[id]; ok {
			result[id] = profile
		}
	}
	return result, nil
}

func (r *fakeProfileRepo) UpdateProfile(profile *models.Profile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

// --- cache and notifier fakes ---

type fakeRecommendationCache struct {
	entries     map[string]*Recommendations
	invalidated []string
	sets        int
}

func newFakeRecommendationCache() *fakeRecommendationCache {
	return &fakeRecommendationCache{entries: make(map[string]*Recommendations)}
}

func (c *fakeRecommendationCache) Get(_ context.Context, viewerID string) (*Recommendations, bool) {
	recs, ok := c.entries[viewerID]
	return recs, ok
}

func (c *fakeRecommendationCache) Set(_ context.Context, viewerID string, recs *Recommendations) {
	c.sets++
	c.entries[viewerID] = recs
}

func (c *fakeRecommendationCache) Invalidate(_ context.Context, viewerID string) {
	c.invalidated = append(c.invalidated, viewerID)
	delete(c.entries, viewerID)
}

type fakeNotifier struct {
	notified []models.Notification
}

func (n *fakeNotifier) NotifyNotification(notification *models.Notification) {
	n.notified = append(n.notified, *notification)
}
