package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Topic is the granularity of change notification.
type Topic string

const (
	TopicStartups      Topic = "startups"
	TopicPosts         Topic = "posts"
	TopicNotifications Topic = "notifications"
	TopicChats         Topic = "chats"
	TopicProfile       Topic = "profile"
	// TopicAll receives every commit regardless of topic.
	TopicAll Topic = "*"
)

// MessagesTopic returns the per-chat message topic.
func MessagesTopic(chatID int) Topic {
	return Topic(fmt.Sprintf("messages:%d", chatID))
}

// Handler receives the topic that committed. Handlers must be idempotent
// with respect to reading the current snapshot; delivery is at-least-once
// per commit per topic.
type Handler func(Topic)

// Hub maps topic -> registered handlers. Subscribers are keyed by a uuid so
// a disposer removes exactly its own registration.
type Hub struct {
	mu   sync.RWMutex
	subs map[Topic]map[uuid.UUID]Handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[Topic]map[uuid.UUID]Handler)}
}

// Subscribe registers handler for topic and returns a disposer that
// unregisters it. Calling the disposer more than once is harmless.
func (h *Hub) Subscribe(topic Topic, handler Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	m, ok := h.subs[topic]
	if !ok {
		m = make(map[uuid.UUID]Handler)
		h.subs[topic] = m
	}
	key := uuid.New()
	m[key] = handler

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if m, ok := h.subs[topic]; ok {
			delete(m, key)
			if len(m) == 0 {
				delete(h.subs, topic)
			}
		}
	}
}

// Publish invokes every handler registered for topic, then every wildcard
// handler. Handlers run synchronously on the caller's goroutine, after the
// mutation that triggered the publish has committed.
func (h *Hub) Publish(topic Topic) {
	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs[topic])+len(h.subs[TopicAll]))
	for _, fn := range h.subs[topic] {
		handlers = append(handlers, fn)
	}
	if topic != TopicAll {
		for _, fn := range h.subs[TopicAll] {
			handlers = append(handlers, fn)
		}
	}
	h.mu.RUnlock()

	for _, fn := range handlers {
		fn(topic)
	}
}
