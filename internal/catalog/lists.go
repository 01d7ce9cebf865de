package catalog

import (
	"strings"

	"launchpad/internal/models"
)

// FilterChats keeps chats whose name contains the query, case-insensitively.
// An empty query passes everything through.
func FilterChats(chats []models.Chat, query string) []models.Chat {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return chats
	}
	out := make([]models.Chat, 0, len(chats))
	for _, c := range chats {
		if strings.Contains(strings.ToLower(c.Name), query) {
			out = append(out, c)
		}
	}
	return out
}

// SplitChats partitions a chat list into direct conversations and groups,
// preserving order.
func SplitChats(chats []models.Chat) (direct, groups []models.Chat) {
	for _, c := range chats {
		if c.IsGroup {
			groups = append(groups, c)
		} else {
			direct = append(direct, c)
		}
	}
	return direct, groups
}

// FilterNotifications keeps notifications of the given type. An empty type
// passes everything through.
func FilterNotifications(list []models.Notification, typ models.NotificationType) []models.Notification {
	if typ == "" {
		return list
	}
	out := make([]models.Notification, 0, len(list))
	for _, n := range list {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// PartitionRequests splits startups by join-request status for the
// My-Startups sub-tabs.
func PartitionRequests(startups []models.Startup) (pending, accepted []models.Startup) {
	for _, st := range startups {
		switch st.RequestStatus {
		case models.RequestStatusPending:
			pending = append(pending, st)
		case models.RequestStatusAccepted:
			accepted = append(accepted, st)
		}
	}
	return pending, accepted
}

// Requested keeps startups the viewer has asked to join.
func Requested(startups []models.Startup) []models.Startup {
	out := make([]models.Startup, 0)
	for _, st := range startups {
		if st.HasRequested {
			out = append(out, st)
		}
	}
	return out
}

// Following keeps startups the viewer follows.
func Following(startups []models.Startup) []models.Startup {
	out := make([]models.Startup, 0)
	for _, st := range startups {
		if st.IsFollowing {
			out = append(out, st)
		}
	}
	return out
}
