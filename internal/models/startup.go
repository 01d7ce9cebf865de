// Package models contains data structures for the application's domain entities.
package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RequestStatus represents the viewer's join-request state for a startup.
type RequestStatus string

const (
	// RequestStatusNone indicates no join request has been made.
	RequestStatusNone RequestStatus = "none"
	// RequestStatusPending indicates a join request awaiting a decision.
	RequestStatusPending RequestStatus = "pending"
	// RequestStatusAccepted indicates an accepted join request.
	RequestStatusAccepted RequestStatus = "accepted"
)

// Founder is the embedded founder summary displayed on a startup card.
type Founder struct {
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}

// Startup is the central catalog record.
type Startup struct {
	ID          int      `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Stage       string   `json:"stage" yaml:"stage"`
	Location    string   `json:"location" yaml:"location"`
	Founded     string   `json:"founded" yaml:"founded"` // ISO date, parsed on demand
	Tags        []string `json:"tags" yaml:"tags"`
	Logo        string   `json:"logo" yaml:"logo"`
	CoverImage  string   `json:"cover_image" yaml:"cover_image"`
	Founder     Founder  `json:"founder" yaml:"founder"`

	Likes     int `json:"likes" yaml:"likes"`
	Comments  int `json:"comments" yaml:"comments"`
	Shares    int `json:"shares" yaml:"shares"`
	Followers int `json:"followers" yaml:"followers"`
	TeamSize  int `json:"team_size" yaml:"team_size"`

	FundingRaised float64 `json:"funding_raised" yaml:"funding_raised"`
	FundingGoal   float64 `json:"funding_goal" yaml:"funding_goal"`
	Growth        string  `json:"growth" yaml:"growth"` // e.g. "+28%", parsed on demand

	IsLiked      bool `json:"is_liked" yaml:"is_liked"`
	IsFollowing  bool `json:"is_following" yaml:"is_following"`
	IsBookmarked bool `json:"is_bookmarked" yaml:"is_bookmarked"`

	IsTrending bool `json:"is_trending" yaml:"is_trending"`
	IsNew      bool `json:"is_new" yaml:"is_new"`
	IsRemote   bool `json:"is_remote" yaml:"is_remote"`

	RequestStatus RequestStatus `json:"request_status" yaml:"request_status"`
	HasRequested  bool          `json:"has_requested" yaml:"has_requested"`

	// Role is the viewer's role when the startup appears in the profile's
	// owned list (Founder, Advisor, Investor, Mentor).
	Role string `json:"role,omitempty" yaml:"role,omitempty"`
}

// FundingProgress returns raised/goal clamped to [0, 1]. Seed data is not
// trusted to satisfy raised <= goal, so readers clamp instead of assuming.
func (s *Startup) FundingProgress() float64 {
	if s.FundingGoal <= 0 || math.IsNaN(s.FundingRaised) || math.IsNaN(s.FundingGoal) {
		return 0
	}
	ratio := s.FundingRaised / s.FundingGoal
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// FundingRaisedValue returns the raised amount with NaN substituted by zero.
func (s *Startup) FundingRaisedValue() float64 {
	if math.IsNaN(s.FundingRaised) {
		return 0
	}
	return s.FundingRaised
}

// GrowthValue parses the display growth string ("+28%") into a number.
// Unparsable values resolve to zero.
func (s *Startup) GrowthValue() float64 {
	g := strings.TrimSpace(s.Growth)
	g = strings.TrimPrefix(g, "+")
	g = strings.TrimSuffix(g, "%")
	v, err := strconv.ParseFloat(g, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// FoundedTime parses the ISO founded date. The zero time is returned for
// missing or malformed dates so that "latest" sorting pushes them last.
func (s *Startup) FoundedTime() time.Time {
	if t, err := time.Parse("2006-01-02", s.Founded); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s.Founded); err == nil {
		return t
	}
	return time.Time{}
}
