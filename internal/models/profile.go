package models

import "time"

// SocialLinks are the viewer's public profiles.
type SocialLinks struct {
	Twitter  string `json:"twitter" yaml:"twitter"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github" yaml:"github"`
}

// ProfileStats duplicates list lengths for cheap display. The store keeps
// them consistent with the backing lists after every affecting mutation;
// Investments is a manually set total.
type ProfileStats struct {
	Startups    int     `json:"startups" yaml:"startups"`
	Followers   int     `json:"followers" yaml:"followers"`
	Following   int     `json:"following" yaml:"following"`
	Investments float64 `json:"investments" yaml:"investments"`
}

// Connection is a person in the followers/following/recommended lists.
type Connection struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Avatar     string   `json:"avatar" yaml:"avatar"`
	Headline   string   `json:"headline" yaml:"headline"`
	IsVerified bool     `json:"is_verified" yaml:"is_verified"`
	Tags       []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Achievement is a credential displayed on the profile.
type Achievement struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Issuer      string `json:"issuer" yaml:"issuer"`
	Year        string `json:"year" yaml:"year"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	URL         string `json:"url" yaml:"url"`
}

// Expertise is a named skill with a 1-5 proficiency level.
type Expertise struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// Activity is a dated profile highlight.
type Activity struct {
	ID         int       `json:"id" yaml:"id"`
	Content    string    `json:"content" yaml:"content"`
	OccurredAt time.Time `json:"occurred_at" yaml:"occurred_at"`
}

// StartupRole records the viewer's role in a catalog startup. The profile's
// owned startup list is assembled from the catalog through these references,
// so counter mutations are visible in every view that shows the entity.
type StartupRole struct {
	StartupID int    `json:"startup_id" yaml:"startup_id"`
	Role      string `json:"role" yaml:"role"`
}

// UserProfile is the viewer's profile plus denormalized display edges.
// Startups is populated on read from the catalog and StartupRoles.
type UserProfile struct {
	Name        string      `json:"name" yaml:"name"`
	Headline    string      `json:"headline" yaml:"headline"`
	Bio         string      `json:"bio" yaml:"bio"`
	Location    string      `json:"location" yaml:"location"`
	Email       string      `json:"email" yaml:"email"`
	Website     string      `json:"website" yaml:"website"`
	JoinDate    string      `json:"join_date" yaml:"join_date"`
	IsVerified  bool        `json:"is_verified" yaml:"is_verified"`
	Skills      []string    `json:"skills" yaml:"skills"`
	SocialLinks SocialLinks `json:"social_links" yaml:"social_links"`

	Stats ProfileStats `json:"stats" yaml:"stats"`

	StartupRoles []StartupRole `json:"startup_roles" yaml:"startup_roles"`
	Startups     []Startup     `json:"startups" yaml:"-"`

	Followers              []Connection  `json:"followers" yaml:"followers"`
	Following              []Connection  `json:"following" yaml:"following"`
	Posts                  []Post        `json:"posts" yaml:"posts"`
	Achievements           []Achievement `json:"achievements" yaml:"achievements"`
	Expertise              []Expertise   `json:"expertise" yaml:"expertise"`
	ActivityHighlights     []Activity    `json:"activity_highlights" yaml:"activity_highlights"`
	RecommendedConnections []Connection  `json:"recommended_connections" yaml:"recommended_connections"`

	// CurrentStartupID points into the catalog; zero means none.
	CurrentStartupID int      `json:"current_startup_id" yaml:"current_startup_id"`
	CurrentStartup   *Startup `json:"current_startup,omitempty" yaml:"-"`
}
