package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"launchpad/internal/catalog"
	"launchpad/internal/models"
	"launchpad/internal/seed"
)

func TestFilterChats(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	got := catalog.FilterChats(ds.Chats, "sarah")
	require.Len(t, got, 1)
	assert.Equal(t, "Sarah Johnson", got[0].Name)

	assert.Len(t, catalog.FilterChats(ds.Chats, ""), len(ds.Chats))
	assert.Empty(t, catalog.FilterChats(ds.Chats, "zzz"))
}

func TestSplitChats(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	direct, groups := catalog.SplitChats(ds.Chats)
	assert.Len(t, direct, 4)
	assert.Len(t, groups, 2)
	for _, c := range direct {
		assert.False(t, c.IsGroup)
	}
	for _, c := range groups {
		assert.True(t, c.IsGroup)
	}
}

func TestFilterNotifications(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	messages := catalog.FilterNotifications(ds.Notifications, models.NotificationMessage)
	assert.Len(t, messages, 3)
	for _, n := range messages {
		assert.Equal(t, models.NotificationMessage, n.Type)
	}

	assert.Len(t, catalog.FilterNotifications(ds.Notifications, ""), len(ds.Notifications))
}

func TestPartitionRequests(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	pending, accepted := catalog.PartitionRequests(ds.Startups)
	require.Len(t, pending, 1)
	assert.Equal(t, "FinTech Pro", pending[0].Name)
	require.Len(t, accepted, 1)
	assert.Equal(t, "FoodDrop", accepted[0].Name)
}

func TestRequestedAndFollowing(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	requested := catalog.Requested(ds.Startups)
	assert.Len(t, requested, 2)
	for _, st := range requested {
		assert.True(t, st.HasRequested)
	}

	following := catalog.Following(ds.Startups)
	assert.Len(t, following, 2)
	for _, st := range following {
		assert.True(t, st.IsFollowing)
	}
}
