package models

import "time"

// NotificationType classifies a notification addressed to the viewer.
type NotificationType string

const (
	NotificationRequestAccepted NotificationType = "request_accepted"
	NotificationMessage         NotificationType = "message"
	NotificationEvent           NotificationType = "event"
	NotificationSystem          NotificationType = "system"
	NotificationFollowRequest   NotificationType = "follow_request"
	NotificationFunding         NotificationType = "funding"
)

// Sender identifies the person behind an interpersonal notification.
type Sender struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// NotificationStartup identifies the startup behind a startup-origin notification.
type NotificationStartup struct {
	Name string `json:"name" yaml:"name"`
	Logo string `json:"logo" yaml:"logo"`
}

// FundingDetails carries progress figures for funding notifications.
type FundingDetails struct {
	Goal       float64 `json:"goal" yaml:"goal"`
	Raised     float64 `json:"raised" yaml:"raised"`
	Percentage int     `json:"percentage" yaml:"percentage"`
}

// Notification is addressed to the viewer. Sender, Startup, Preview and
// FundingDetails are populated conditionally on Type.
type Notification struct {
	ID             int                  `json:"id" yaml:"id"`
	Type           NotificationType     `json:"type" yaml:"type"`
	Content        string               `json:"content" yaml:"content"`
	CreatedAt      time.Time            `json:"created_at" yaml:"created_at"`
	Read           bool                 `json:"read" yaml:"read"`
	Sender         *Sender              `json:"sender,omitempty" yaml:"sender,omitempty"`
	Startup        *NotificationStartup `json:"startup,omitempty" yaml:"startup,omitempty"`
	Preview        string               `json:"preview,omitempty" yaml:"preview,omitempty"`
	FundingDetails *FundingDetails      `json:"funding_details,omitempty" yaml:"funding_details,omitempty"`
}
