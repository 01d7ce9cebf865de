package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubSubscribeAndPublish(t *testing.T) {
	h := NewHub()

	var got []Topic
	dispose := h.Subscribe(TopicChats, func(topic Topic) {
		got = append(got, topic)
	})

	h.Publish(TopicChats)
	h.Publish(TopicPosts) // different topic, not delivered
	assert.Equal(t, []Topic{TopicChats}, got)

	dispose()
	h.Publish(TopicChats)
	assert.Len(t, got, 1, "disposed handler must not be invoked")

	// disposing twice is harmless
	dispose()
}

func TestHubWildcardReceivesEveryTopic(t *testing.T) {
	h := NewHub()

	count := 0
	dispose := h.Subscribe(TopicAll, func(Topic) { count++ })
	defer dispose()

	h.Publish(TopicStartups)
	h.Publish(TopicNotifications)
	h.Publish(MessagesTopic(3))
	assert.Equal(t, 3, count)
}

func TestHubIndependentDisposers(t *testing.T) {
	h := NewHub()

	first, second := 0, 0
	disposeFirst := h.Subscribe(TopicProfile, func(Topic) { first++ })
	disposeSecond := h.Subscribe(TopicProfile, func(Topic) { second++ })
	defer disposeSecond()

	h.Publish(TopicProfile)
	disposeFirst()
	h.Publish(TopicProfile)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestMessagesTopic(t *testing.T) {
	assert.Equal(t, Topic("messages:42"), MessagesTopic(42))
}
