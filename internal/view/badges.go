package view

import (
	"launchpad/internal/models"
	"launchpad/internal/store"
)

// UnreadNotifications recomputes the notifications badge from the
// authoritative list.
func UnreadNotifications(s *store.Store) int {
	count := 0
	for _, n := range s.ListNotifications() {
		if !n.Read {
			count++
		}
	}
	return count
}

// UnreadMessages recomputes the messages badge as the sum of per-chat
// unread counters.
func UnreadMessages(s *store.Store) int {
	total := 0
	for _, c := range s.ListChats() {
		total += c.UnreadCount
	}
	return total
}

// UnreadNotificationsByType breaks the notifications badge down per filter
// tab on the notifications screen.
func UnreadNotificationsByType(s *store.Store) map[models.NotificationType]int {
	counts := make(map[models.NotificationType]int)
	for _, n := range s.ListNotifications() {
		if !n.Read {
			counts[n.Type]++
		}
	}
	return counts
}
