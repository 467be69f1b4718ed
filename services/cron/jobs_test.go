package cron

import (
	"testing"
	"time"

	"github.com/sahilchouksey/college-connect/model"
	"github.com/sahilchouksey/college-connect/store"
)

func TestMarkStaleNotificationsRead(t *testing.T) {
	st := store.NewMemoryStore()
	now := time.Now()
	st.PutUser(model.User{
		ID:   "u1",
		Role: model.RoleStudent,
		Notifications: []model.Notification{
			{ID: "n-recent-unread", Timestamp: now.Add(-24 * time.Hour)},
			{ID: "n-old-unread", Timestamp: now.Add(-40 * 24 * time.Hour)},
			{ID: "n-old-read", IsRead: true, Timestamp: now.Add(-40 * 24 * time.Hour)},
		},
	})

	m := NewCronManager(st, nil)
	m.MarkStaleNotificationsRead()

	u, _ := st.GetUser("u1")
	if len(u.Notifications) != 3 {
		t.Fatalf("notifications must never be deleted, got %d of 3", len(u.Notifications))
	}

	byID := make(map[string]model.Notification, len(u.Notifications))
	for _, n := range u.Notifications {
		byID[n.ID] = n
	}
	if byID["n-recent-unread"].IsRead {
		t.Error("recent unread notification must stay unread")
	}
	if !byID["n-old-unread"].IsRead {
		t.Error("stale unread notification must be marked read")
	}
	if !byID["n-old-read"].IsRead {
		t.Error("already-read notification must stay read")
	}
}

func TestFlushMirrorQueueWithoutMirror(t *testing.T) {
	m := NewCronManager(store.NewMemoryStore(), nil)
	// Must be a no-op, not a panic, when no webhook endpoint is configured.
	m.FlushMirrorQueue()
}
