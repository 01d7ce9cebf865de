package models

import "time"

// PostStartup is the embedded startup summary shown on a feed item.
type PostStartup struct {
	Name     string `json:"name" yaml:"name"`
	Logo     string `json:"logo" yaml:"logo"`
	Category string `json:"category" yaml:"category"`
}

// Post is an activity feed item belonging to a startup (or, when the
// startup summary is empty, to the viewer's own profile feed).
type Post struct {
	ID       int         `json:"id" yaml:"id"`
	Startup  PostStartup `json:"startup" yaml:"startup"`
	Content  string      `json:"content" yaml:"content"`
	Image    string      `json:"image,omitempty" yaml:"image,omitempty"`
	PostedAt time.Time   `json:"posted_at" yaml:"posted_at"`
	Likes    int         `json:"likes" yaml:"likes"`
	Comments int         `json:"comments" yaml:"comments"`
	Shares   int         `json:"shares" yaml:"shares"`
	IsLiked  bool        `json:"is_liked" yaml:"is_liked"`
}

// Comment is a viewer-visible comment on a post.
type Comment struct {
	ID       int       `json:"id" yaml:"id"`
	PostID   int       `json:"post_id" yaml:"post_id"`
	Author   string    `json:"author" yaml:"author"`
	Avatar   string    `json:"avatar" yaml:"avatar"`
	Content  string    `json:"content" yaml:"content"`
	PostedAt time.Time `json:"posted_at" yaml:"posted_at"`
}
