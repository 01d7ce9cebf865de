package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/models"
	"launchpad/internal/seed"
	"launchpad/internal/store"
	"launchpad/internal/view"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	ds, err := seed.Default()
	require.NoError(t, err)
	return store.New(ds, store.WithClock(func() time.Time { return testNow }))
}

func TestUnreadBadges(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 6, view.UnreadNotifications(s))
	assert.Equal(t, 7, view.UnreadMessages(s), "2 from Sarah plus 5 from the EcoVentures group")

	require.NoError(t, s.MarkNotificationRead(1))
	assert.Equal(t, 5, view.UnreadNotifications(s))

	require.NoError(t, s.MarkAllNotificationsRead())
	assert.Zero(t, view.UnreadNotifications(s))

	require.NoError(t, s.MarkAllChatsRead())
	assert.Zero(t, view.UnreadMessages(s))
}

func TestUnreadNotificationsByType(t *testing.T) {
	s := newTestStore(t)

	counts := view.UnreadNotificationsByType(s)
	assert.Equal(t, 2, counts[models.NotificationMessage])
	assert.Equal(t, 1, counts[models.NotificationFunding])
	assert.Zero(t, counts[models.NotificationSystem], "the system notification is already read")
}

func TestBindingMountAndUnmount(t *testing.T) {
	s := newTestStore(t)
	b := view.NewBinding(s)

	renders := 0
	b.Mount(func(store.Topic) { renders++ }, store.TopicStartups, store.TopicProfile)
	assert.Equal(t, 2, renders, "mount renders once per topic from the current snapshot")

	require.NoError(t, s.ToggleLike(1))
	assert.Equal(t, 3, renders)

	b.Unmount()
	require.NoError(t, s.ToggleLike(1))
	assert.Equal(t, 3, renders, "unmounted binding must not re-render")

	// unmounting twice is safe
	b.Unmount()
}

func TestBindingRemountReleasesOldSubscriptions(t *testing.T) {
	s := newTestStore(t)
	b := view.NewBinding(s)

	renders := 0
	b.Mount(func(store.Topic) { renders++ }, store.TopicStartups)
	b.Mount(func(store.Topic) { renders++ }, store.TopicStartups)
	renders = 0

	require.NoError(t, s.ToggleLike(1))
	assert.Equal(t, 1, renders, "remounting must not leak the previous subscription")
	b.Unmount()
}

func TestDialogReconciliation(t *testing.T) {
	s := newTestStore(t)
	d := view.NewStartupDialog(s)

	require.True(t, d.Open(1))
	require.True(t, d.IsOpen())
	before := d.Selected()
	require.Equal(t, 253, before.Likes)

	// a mutation issued from the list view shows up in the dialog's copy
	require.NoError(t, s.ToggleLike(1))
	assert.Equal(t, 254, d.Selected().Likes)
	assert.True(t, d.Selected().IsLiked)

	// and one issued through the dialog matches the list view
	require.NoError(t, d.ToggleLike())
	list, _ := s.GetStartup(1)
	assert.Equal(t, d.Selected().Likes, list.Likes)

	d.Close()
	assert.False(t, d.IsOpen())
	require.NoError(t, s.ToggleLike(1))
	assert.Equal(t, list.Likes, d.Selected().Likes, "closed dialog stops tracking")
}

func TestDialogOpenUnknownID(t *testing.T) {
	s := newTestStore(t)
	d := view.NewStartupDialog(s)
	assert.False(t, d.Open(9999))
	assert.False(t, d.IsOpen())
}

func TestStartupFormDraftDefaults(t *testing.T) {
	form := view.StartupForm{
		Name:        "X",
		Description: "Y",
		Industry:    "Technology",
		Stage:       "Seed",
		Location:    "Remote",
		TeamSize:    1,
		FundingGoal: 100000,
	}
	draft := form.Draft()

	assert.Zero(t, draft.ID, "the view never assigns ids")
	assert.Zero(t, draft.Likes)
	assert.Zero(t, draft.Followers)
	assert.Equal(t, "+0%", draft.Growth)
	assert.True(t, draft.IsNew)
	assert.True(t, draft.IsRemote)
	assert.False(t, draft.IsLiked)
	assert.False(t, draft.IsFollowing)
	assert.False(t, draft.IsBookmarked)
	assert.Equal(t, models.RequestStatusNone, draft.RequestStatus)
}

func TestStartupFormRemoteDetection(t *testing.T) {
	tests := []struct {
		location string
		want     bool
	}{
		{"Remote", true},
		{"remote-first, worldwide", true},
		{"San Francisco, CA", false},
		{"", false},
	}
	for _, tt := range tests {
		form := view.StartupForm{Location: tt.location}
		assert.Equal(t, tt.want, form.Draft().IsRemote, "location %q", tt.location)
	}
}

func TestStartupFormSubmitAppearsInNewTab(t *testing.T) {
	s := newTestStore(t)
	form := view.StartupForm{
		Name:        "X",
		Description: "Y",
		Industry:    "Technology",
		Stage:       "Seed",
		Location:    "Remote",
		TeamSize:    1,
		FundingGoal: 100000,
	}

	created, err := form.Submit(s)
	require.NoError(t, err)

	catalogList := s.ListStartups()
	assert.Equal(t, created.ID, catalogList[0].ID)
	assert.True(t, catalogList[0].IsNew)
	assert.True(t, catalogList[0].IsRemote)
}

func TestRelativeTime(t *testing.T) {
	now := testNow
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"yesterday", now.Add(-30 * time.Hour), "Yesterday"},
		{"days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"weeks", now.Add(-14 * 24 * time.Hour), "2 weeks ago"},
		{"months", now.Add(-70 * 24 * time.Hour), "2 months ago"},
		{"zero time", time.Time{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.RelativeTime(now, tt.t))
		})
	}
}
