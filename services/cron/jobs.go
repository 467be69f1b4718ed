package cron

import (
	"context"
	"time"

	"github.com/sahilchouksey/college-connect/model"
)

// staleUnreadAge is how long an unread notification may sit before the
// daily sweep flips it to read.
const staleUnreadAge = 30 * 24 * time.Hour

// FlushMirrorQueue retries webhook mirror events that failed their first
// delivery. Remaining failures stay queued for the next run.
func (m *CronManager) FlushMirrorQueue() {
	if m.mirror == nil {
		return
	}
	if m.mirror.PendingCount() == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	remaining := m.mirror.Flush(ctx)
	m.log.WithField("remaining", remaining).Info("mirror queue flushed")
}

// MarkStaleNotificationsRead flips unread notifications older than the
// stale window to read. Notifications are never removed; the read flag is
// the only field this touches.
func (m *CronManager) MarkStaleNotificationsRead() {
	cutoff := time.Now().Add(-staleUnreadAge)
	marked := 0

	for _, user := range m.store.ListUsers() {
		changed := false
		updated := make([]model.Notification, len(user.Notifications))
		for i, n := range user.Notifications {
			if !n.IsRead && n.Timestamp.Before(cutoff) {
				n.IsRead = true
				marked++
				changed = true
			}
			updated[i] = n
		}
		if changed {
			user.Notifications = updated
			m.store.PutUser(user)
		}
	}

	m.log.WithField("marked", marked).Info("stale notifications marked read")
}
