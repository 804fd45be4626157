package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jonathan/placement-portal/internal/types"
)

// ErrNotificationNotFound is returned when marking an unknown notification.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationStore owns the portal-wide notification list.
// It is not safe for concurrent use; the portal serializes access.
type NotificationStore struct {
	items []types.Notification
}

// NewNotificationStore creates a store seeded with Notifications().
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{items: Notifications()}
}

// List returns a copy of all notifications in seed order.
func (s *NotificationStore) List() []types.Notification {
	return slices.Clone(s.items)
}

// Unread counts notifications not yet marked read.
func (s *NotificationStore) Unread() int {
	n := 0
	for _, item := range s.items {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead marks the notification with the given id as read.
func (s *NotificationStore) MarkRead(id int) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("%w: %d", ErrNotificationNotFound, id)
}
