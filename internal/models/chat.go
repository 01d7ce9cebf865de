package models

import "time"

// PresenceStatus is the other party's presence in a direct chat.
type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceOffline PresenceStatus = "offline"
)

// MessageStatus tracks delivery of a sent message.
type MessageStatus string

const (
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
)

// ViewerSenderID is the sender token denoting the in-process viewer.
const ViewerSenderID = "me"

// Chat is a direct or group conversation.
type Chat struct {
	ID                int            `json:"id" yaml:"id"`
	Name              string         `json:"name" yaml:"name"`
	Avatar            string         `json:"avatar" yaml:"avatar"`
	LastMessage       string         `json:"last_message" yaml:"last_message"`
	LastMessageAt     time.Time      `json:"last_message_at" yaml:"last_message_at"`
	LastMessageSender string         `json:"last_message_sender,omitempty" yaml:"last_message_sender,omitempty"` // groups only
	UnreadCount       int            `json:"unread_count" yaml:"unread_count"`
	Status            PresenceStatus `json:"status,omitempty" yaml:"status,omitempty"` // direct only
	LastActive        time.Time      `json:"last_active,omitempty" yaml:"last_active,omitempty"`
	IsGroup           bool           `json:"is_group" yaml:"is_group"`
}

// Message belongs to a chat. Messages inside a chat are totally ordered by
// Timestamp, ties broken by ID.
type Message struct {
	ID        int           `json:"id" yaml:"id"`
	ChatID    int           `json:"chat_id" yaml:"chat_id"`
	SenderID  string        `json:"sender_id" yaml:"sender_id"`
	Content   string        `json:"content" yaml:"content"`
	Timestamp time.Time     `json:"timestamp" yaml:"timestamp"`
	Status    MessageStatus `json:"status" yaml:"status"`
	IsRead    bool          `json:"is_read" yaml:"is_read"`
}
