package services

import (
	"context"
	"testing"
	"time"

	"github.com/seojin-dev/as-human-being/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type interactionFixture struct {
	inspirations  *fakeInspirationRepo
	resonates     *fakeResonateRepo
	bookmarks     *fakeBookmarkRepo
	comments      *fakeCommentRepo
	notifications *fakeNotificationRepo
	notifier      *fakeNotifier
	cache         *fakeRecommendationCache
	service       *InteractionService
}

func newInteractionFixture() *interactionFixture {
	inspirations := newFakeInspirationRepo()
	resonates := newFakeResonateRepo(inspirations)
	bookmarks := newFakeBookmarkRepo(inspirations)
	comments := &fakeCommentRepo{}
	notifications := &fakeNotificationRepo{}
	notifier := &fakeNotifier{}
	cache := newFakeRecommendationCache()
	return &interactionFixture{
		inspirations:  inspirations,
		resonates:     resonates,
		bookmarks:     bookmarks,
		comments:      comments,
		notifications: notifications,
		notifier:      notifier,
		cache:         cache,
		service: NewInteractionService(
			inspirations, resonates, bookmarks, comments, notifications,
			notifier, cache, zap.NewNop()),
	}
}

func (f *interactionFixture) addInspiration(id, ownerID string) {
	f.inspirations.add(models.Inspiration{
		ID:        id,
		UserID:    ownerID,
		Content:   "content",
		IsPublic:  true,
		CreatedAt: time.Now(),
	})
}

func TestToggleResonateOnThenOff(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")
	ctx := context.Background()

	on, err := f.service.ToggleResonate(ctx, "fan", "post")
	require.NoError(t, err)
	assert.True(t, on.Resonated)
	assert.Equal(t, int64(1), on.Count)

	off, err := f.service.ToggleResonate(ctx, "fan", "post")
	require.NoError(t, err)
	assert.False(t, off.Resonated)
	assert.Equal(t, int64(0), off.Count)
}

func TestToggleResonateNotifiesOwnerOnceOnTurnOn(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")
	ctx := context.Background()

	_, err := f.service.ToggleResonate(ctx, "fan", "post")
	require.NoError(t, err)

	require.Len(t, f.notifications.notifications, 1)
	n := f.notifications.notifications[0]
	assert.Equal(t, models.NotificationTypeResonate, n.Type)
	assert.Equal(t, "owner", n.UserID)
	assert.Equal(t, "fan", n.ActorID)
	assert.Equal(t, "post", n.InspirationID)
	assert.False(t, n.IsRead)

	// The realtime stream sees the same notification.
	require.Len(t, f.notifier.notified, 1)
	assert.Equal(t, n.ID, f.notifier.notified[0].ID)

	// Turning it off creates nothing further.
	_, err = f.service.ToggleResonate(ctx, "fan", "post")
	require.NoError(t, err)
	assert.Len(t, f.notifications.notifications, 1)
}

func TestToggleResonateOwnPostSkipsNotification(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")

	result, err := f.service.ToggleResonate(context.Background(), "owner", "post")
	require.NoError(t, err)
	assert.True(t, result.Resonated)
	assert.Empty(t, f.notifications.notifications)
	assert.Empty(t, f.notifier.notified)
}

func TestToggleResonateUnknownInspiration(t *testing.T) {
	f := newInteractionFixture()

	_, err := f.service.ToggleResonate(context.Background(), "fan", "missing")
	assert.ErrorIs(t, err, ErrInspirationNotFound)
}

func TestToggleResonateInvalidatesRecommendations(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")

	_, err := f.service.ToggleResonate(context.Background(), "fan", "post")
	require.NoError(t, err)
	assert.Equal(t, []string{"fan"}, f.cache.invalidated)
}

func TestToggleBookmarkOnThenOff(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")
	ctx := context.Background()

	on, err := f.service.ToggleBookmark(ctx, "fan", "post")
	require.NoError(t, err)
	assert.True(t, on.Bookmarked)

	off, err := f.service.ToggleBookmark(ctx, "fan", "post")
	require.NoError(t, err)
	assert.False(t, off.Bookmarked)

	has, _ := f.bookmarks.HasUserBookmarked(ctx, "fan", "post")
	assert.False(t, has)
}

func TestToggleBookmarkNotifiesOwner(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")

	_, err := f.service.ToggleBookmark(context.Background(), "fan", "post")
	require.NoError(t, err)

	require.Len(t, f.notifications.notifications, 1)
	assert.Equal(t, models.NotificationTypeBookmark, f.notifications.notifications[0].Type)
}

func TestCreateCommentNotifiesOwner(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")

	comment, err := f.service.CreateComment(context.Background(), "fan", "post", "great thought")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)
	assert.Equal(t, "great thought", comment.Content)

	require.Len(t, f.notifications.notifications, 1)
	n := f.notifications.notifications[0]
	assert.Equal(t, models.NotificationTypeComment, n.Type)
	assert.Equal(t, "owner", n.UserID)
	assert.Equal(t, "fan", n.ActorID)
}

func TestCreateCommentOnOwnPostSkipsNotification(t *testing.T) {
	f := newInteractionFixture()
	f.addInspiration("post", "owner")

	_, err := f.service.CreateComment(context.Background(), "owner", "post", "note to self")
	require.NoError(t, err)
	assert.Empty(t, f.notifications.notifications)
}

func TestCreateCommentUnknownInspiration(t *testing.T) {
	f := newInteractionFixture()

	_, err := f.service.CreateComment(context.Background(), "fan", "missing", "hello")
	assert.ErrorIs(t, err, ErrInspirationNotFound)
}
