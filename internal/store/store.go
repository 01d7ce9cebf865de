// Package store holds the authoritative in-memory state for the application
// and broadcasts change events to subscribed views. All reads return
// snapshots; all writes go through intent-based mutations that either commit
// and publish, or fail and leave state untouched.
//
// The store assumes the host's single-threaded event loop: mutations run to
// completion, and their change events are delivered to every subscriber,
// before the next event is dispatched. Concurrent writers are out of scope.
package store

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"launchpad/internal/logging"
	"launchpad/internal/models"
)

// Dataset is the bootstrap state installed into a new Store.
type Dataset struct {
	Startups      []models.Startup     `yaml:"startups"`
	Posts         []models.Post        `yaml:"posts"`
	Comments      []models.Comment     `yaml:"comments"`
	Notifications []models.Notification `yaml:"notifications"`
	Chats         []models.Chat        `yaml:"chats"`
	Messages      []models.Message     `yaml:"messages"`
	Profile       models.UserProfile   `yaml:"profile"`
}

// Store is the single mutable resource in the process. Mutations are
// synchronous and atomic from the caller's perspective: the change event for
// a commit is delivered to every subscriber before the mutation returns.
type Store struct {
	hub *Hub
	log *slog.Logger

	startups      []*models.Startup
	posts         []*models.Post
	comments      map[int][]*models.Comment
	notifications []*models.Notification
	chats         []*models.Chat
	messages      map[int][]*models.Message
	profile       models.UserProfile

	nextStartupID int
	nextPostID    int
	nextMessageID int
	nextCommentID int

	clock func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the time source. Used by tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithLogger substitutes the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New builds a Store from the seed dataset. The seed establishes initial
// state exactly once; afterwards every change is a mutation.
func New(ds Dataset, opts ...Option) *Store {
	s := &Store{
		hub:      NewHub(),
		log:      logging.Logger,
		comments: make(map[int][]*models.Comment),
		messages: make(map[int][]*models.Message),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	for i := range ds.Startups {
		st := ds.Startups[i]
		if st.RequestStatus == "" {
			st.RequestStatus = models.RequestStatusNone
		}
		s.startups = append(s.startups, &st)
		if st.ID >= s.nextStartupID {
			s.nextStartupID = st.ID + 1
		}
	}
	for i := range ds.Posts {
		p := ds.Posts[i]
		s.posts = append(s.posts, &p)
		if p.ID >= s.nextPostID {
			s.nextPostID = p.ID + 1
		}
	}
	for i := range ds.Comments {
		c := ds.Comments[i]
		s.comments[c.PostID] = append(s.comments[c.PostID], &c)
		if c.ID >= s.nextCommentID {
			s.nextCommentID = c.ID + 1
		}
	}
	for i := range ds.Notifications {
		n := ds.Notifications[i]
		s.notifications = append(s.notifications, &n)
	}
	for i := range ds.Chats {
		c := ds.Chats[i]
		s.chats = append(s.chats, &c)
	}
	for i := range ds.Messages {
		m := ds.Messages[i]
		s.messages[m.ChatID] = append(s.messages[m.ChatID], &m)
		if m.ID >= s.nextMessageID {
			s.nextMessageID = m.ID + 1
		}
	}
	for chatID := range s.messages {
		msgs := s.messages[chatID]
		sort.SliceStable(msgs, func(i, j int) bool {
			if msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
				return msgs[i].ID < msgs[j].ID
			}
			return msgs[i].Timestamp.Before(msgs[j].Timestamp)
		})
	}

	s.profile = ds.Profile
	s.recomputeStats()

	s.log.Info("store bootstrapped",
		slog.Int("startups", len(s.startups)),
		slog.Int("posts", len(s.posts)),
		slog.Int("notifications", len(s.notifications)),
		slog.Int("chats", len(s.chats)))
	return s
}

// Subscribe registers handler for topic and returns a disposer.
func (s *Store) Subscribe(topic Topic, handler Handler) func() {
	return s.hub.Subscribe(topic, handler)
}

// ---- snapshot reads ----

// ListStartups returns a snapshot of the catalog in insertion order
// (newest creations first).
func (s *Store) ListStartups() []models.Startup {
	out := make([]models.Startup, len(s.startups))
	for i, st := range s.startups {
		out[i] = *st
	}
	return out
}

// GetStartup returns a copy of the startup, or false when the id is unknown.
func (s *Store) GetStartup(id int) (models.Startup, bool) {
	if st := s.findStartup(id); st != nil {
		return *st, true
	}
	return models.Startup{}, false
}

// ListPosts returns a snapshot of the activity feed, insertion order
// (reverse chronology).
func (s *Store) ListPosts() []models.Post {
	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = *p
	}
	return out
}

// ListComments returns a snapshot of a post's comments in append order.
func (s *Store) ListComments(postID int) []models.Comment {
	src := s.comments[postID]
	out := make([]models.Comment, len(src))
	for i, c := range src {
		out[i] = *c
	}
	return out
}

// ListNotifications returns a snapshot ordered newest first.
func (s *Store) ListNotifications() []models.Notification {
	out := make([]models.Notification, len(s.notifications))
	for i, n := range s.notifications {
		out[i] = *n
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ListChats returns a snapshot sorted by last message time descending.
func (s *Store) ListChats() []models.Chat {
	out := make([]models.Chat, len(s.chats))
	for i, c := range s.chats {
		out[i] = *c
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out
}

// ListMessages returns a chat's messages in ascending timestamp order,
// ties broken by id.
func (s *Store) ListMessages(chatID int) []models.Message {
	src := s.messages[chatID]
	out := make([]models.Message, len(src))
	for i, m := range src {
		out[i] = *m
	}
	return out
}

// GetProfile returns the viewer's profile with the owned startup list
// assembled from the catalog, so counter mutations show up in every view.
func (s *Store) GetProfile() models.UserProfile {
	p := s.profile
	p.Startups = make([]models.Startup, 0, len(p.StartupRoles))
	for _, ref := range p.StartupRoles {
		if st := s.findStartup(ref.StartupID); st != nil {
			owned := *st
			owned.Role = ref.Role
			p.Startups = append(p.Startups, owned)
		}
	}
	if p.CurrentStartupID != 0 {
		if st := s.findStartup(p.CurrentStartupID); st != nil {
			cur := *st
			p.CurrentStartup = &cur
		}
	}
	return p
}

// ---- mutations ----

// ToggleLike flips the viewer's like on a startup and adjusts the counter
// symmetrically. The counter never goes below zero.
func (s *Store) ToggleLike(startupID int) error {
	st := s.findStartup(startupID)
	if st == nil {
		return models.NewUnknownEntityError("startup", startupID)
	}
	st.IsLiked = !st.IsLiked
	if st.IsLiked {
		st.Likes++
	} else if st.Likes > 0 {
		st.Likes--
	}
	s.log.Debug("toggled like", slog.Int("startup", startupID), slog.Bool("liked", st.IsLiked))
	s.hub.Publish(TopicStartups)
	return nil
}

// ToggleFollow flips the viewer's follow on a startup and adjusts its
// follower counter symmetrically.
func (s *Store) ToggleFollow(startupID int) error {
	st := s.findStartup(startupID)
	if st == nil {
		return models.NewUnknownEntityError("startup", startupID)
	}
	st.IsFollowing = !st.IsFollowing
	if st.IsFollowing {
		st.Followers++
	} else if st.Followers > 0 {
		st.Followers--
	}
	s.hub.Publish(TopicStartups)
	return nil
}

// ToggleBookmark flips the viewer's bookmark on a startup.
func (s *Store) ToggleBookmark(startupID int) error {
	st := s.findStartup(startupID)
	if st == nil {
		return models.NewUnknownEntityError("startup", startupID)
	}
	st.IsBookmarked = !st.IsBookmarked
	s.hub.Publish(TopicStartups)
	return nil
}

// LikePost flips the viewer's like on a feed post.
func (s *Store) LikePost(postID int) error {
	p := s.findPost(postID)
	if p == nil {
		return models.NewUnknownEntityError("post", postID)
	}
	p.IsLiked = !p.IsLiked
	if p.IsLiked {
		p.Likes++
	} else if p.Likes > 0 {
		p.Likes--
	}
	s.hub.Publish(TopicPosts)
	return nil
}

// AddPost appends a new feed post authored now. The post is inserted at the
// front of the feed to preserve reverse chronology.
func (s *Store) AddPost(startup models.PostStartup, content, image string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.NewInvalidInputError("post content must not be empty")
	}
	post := &models.Post{
		ID:       s.nextPostID,
		Startup:  startup,
		Content:  content,
		Image:    image,
		PostedAt: s.clock(),
	}
	s.nextPostID++
	s.posts = append([]*models.Post{post}, s.posts...)
	s.hub.Publish(TopicPosts)
	return nil
}

// AddComment appends a comment authored by the viewer and bumps the post's
// comment counter.
func (s *Store) AddComment(postID int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.NewInvalidInputError("comment must not be empty")
	}
	p := s.findPost(postID)
	if p == nil {
		return models.NewUnknownEntityError("post", postID)
	}
	comment := &models.Comment{
		ID:       s.nextCommentID,
		PostID:   postID,
		Author:   s.profile.Name,
		Content:  text,
		PostedAt: s.clock(),
	}
	s.nextCommentID++
	s.comments[postID] = append(s.comments[postID], comment)
	p.Comments++
	s.hub.Publish(TopicPosts)
	return nil
}

// MarkNotificationRead marks one notification read. Idempotent.
func (s *Store) MarkNotificationRead(id int) error {
	for _, n := range s.notifications {
		if n.ID == id {
			n.Read = true
			s.hub.Publish(TopicNotifications)
			return nil
		}
	}
	return models.NewUnknownEntityError("notification", id)
}

// MarkAllNotificationsRead marks every notification read.
func (s *Store) MarkAllNotificationsRead() error {
	for _, n := range s.notifications {
		n.Read = true
	}
	s.hub.Publish(TopicNotifications)
	return nil
}

// DismissNotification removes a notification from the list.
func (s *Store) DismissNotification(id int) error {
	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			s.hub.Publish(TopicNotifications)
			return nil
		}
	}
	return models.NewUnknownEntityError("notification", id)
}

// MarkChatRead clears a chat's unread counter.
func (s *Store) MarkChatRead(chatID int) error {
	c := s.findChat(chatID)
	if c == nil {
		return models.NewUnknownEntityError("chat", chatID)
	}
	c.UnreadCount = 0
	s.hub.Publish(TopicChats)
	return nil
}

// MarkAllChatsRead clears every chat's unread counter.
func (s *Store) MarkAllChatsRead() error {
	for _, c := range s.chats {
		c.UnreadCount = 0
	}
	s.hub.Publish(TopicChats)
	return nil
}

// SendMessage appends a viewer-authored message to a chat and refreshes the
// chat's last-message summary. Appending never reorders existing messages:
// the new timestamp is clamped so the per-chat total order is preserved.
func (s *Store) SendMessage(chatID int, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.NewInvalidInputError("message content must not be empty")
	}
	c := s.findChat(chatID)
	if c == nil {
		return models.NewUnknownEntityError("chat", chatID)
	}

	ts := s.clock()
	if msgs := s.messages[chatID]; len(msgs) > 0 {
		if last := msgs[len(msgs)-1].Timestamp; ts.Before(last) {
			ts = last
		}
	}
	msg := &models.Message{
		ID:        s.nextMessageID,
		ChatID:    chatID,
		SenderID:  models.ViewerSenderID,
		Content:   content,
		Timestamp: ts,
		Status:    models.MessageSent,
		IsRead:    false,
	}
	s.nextMessageID++
	s.messages[chatID] = append(s.messages[chatID], msg)

	c.LastMessage = content
	c.LastMessageAt = ts
	c.LastMessageSender = ""
	c.UnreadCount = 0

	s.hub.Publish(MessagesTopic(chatID))
	s.hub.Publish(TopicChats)
	return nil
}

// CreateStartup validates the draft, assigns a fresh id, and inserts the
// record at the front of the catalog with the viewer as founder.
func (s *Store) CreateStartup(draft models.Startup) (models.Startup, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", draft.Name},
		{"description", draft.Description},
		{"industry", draft.Category},
		{"stage", draft.Stage},
		{"location", draft.Location},
	} {
		if strings.TrimSpace(field.value) == "" {
			return models.Startup{}, models.NewInvalidDraftError(field.name)
		}
	}

	draft.ID = s.nextStartupID
	s.nextStartupID++
	draft.IsNew = true
	draft.Role = "Founder"
	if draft.RequestStatus == "" {
		draft.RequestStatus = models.RequestStatusNone
	}
	if draft.Founded == "" {
		draft.Founded = s.clock().Format("2006-01-02")
	}

	st := draft
	s.startups = append([]*models.Startup{&st}, s.startups...)
	s.profile.StartupRoles = append(s.profile.StartupRoles, models.StartupRole{
		StartupID: st.ID,
		Role:      "Founder",
	})
	s.recomputeStats()

	s.log.Info("startup created", slog.Int("id", st.ID), slog.String("name", st.Name))
	s.hub.Publish(TopicStartups)
	s.hub.Publish(TopicProfile)
	return st, nil
}

// RequestJoin moves a startup's join request from none to pending.
// Calling it again while pending or accepted is a no-op.
func (s *Store) RequestJoin(startupID int) error {
	st := s.findStartup(startupID)
	if st == nil {
		return models.NewUnknownEntityError("startup", startupID)
	}
	if st.RequestStatus != models.RequestStatusNone {
		return nil
	}
	st.RequestStatus = models.RequestStatusPending
	st.HasRequested = true
	s.hub.Publish(TopicStartups)
	return nil
}

// AcceptJoin moves a pending join request to accepted.
func (s *Store) AcceptJoin(startupID int) error {
	st := s.findStartup(startupID)
	if st == nil {
		return models.NewUnknownEntityError("startup", startupID)
	}
	if st.RequestStatus != models.RequestStatusPending {
		return models.NewIllegalTransitionError(st.RequestStatus, models.RequestStatusAccepted)
	}
	st.RequestStatus = models.RequestStatusAccepted
	st.HasRequested = true
	s.hub.Publish(TopicStartups)
	return nil
}

// CancelJoin withdraws a pending join request.
func (s *Store) CancelJoin(startupID int) error {
	st := s.findStartup(startupID)
	if st == nil {
		return models.NewUnknownEntityError("startup", startupID)
	}
	if st.RequestStatus != models.RequestStatusPending {
		return models.NewIllegalTransitionError(st.RequestStatus, models.RequestStatusNone)
	}
	st.RequestStatus = models.RequestStatusNone
	st.HasRequested = false
	s.hub.Publish(TopicStartups)
	return nil
}

// ---- internals ----

func (s *Store) findStartup(id int) *models.Startup {
	for _, st := range s.startups {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (s *Store) findPost(id int) *models.Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) findChat(id int) *models.Chat {
	for _, c := range s.chats {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// recomputeStats re-derives the cached profile stats from their backing
// lists. Investments is a manually set total and is left alone.
func (s *Store) recomputeStats() {
	s.profile.Stats.Startups = len(s.profile.StartupRoles)
	s.profile.Stats.Followers = len(s.profile.Followers)
	s.profile.Stats.Following = len(s.profile.Following)
}
