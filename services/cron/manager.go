package cron

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/sahilchouksey/college-connect/services/mirror"
	"github.com/sahilchouksey/college-connect/store"
)

// CronManager schedules the background jobs: marking stale unread
// notifications read and flushing the webhook mirror retry queue.
type CronManager struct {
	cron   *cron.Cron
	store  store.Storage
	mirror *mirror.WebhookMirror
	log    *logrus.Entry
}

// NewCronManager creates a cron manager. The mirror may be nil when no
// webhook endpoint is configured.
func NewCronManager(st store.Storage, m *mirror.WebhookMirror) *CronManager {
	return &CronManager{
		cron:   cron.New(cron.WithSeconds()),
		store:  st,
		mirror: m,
		log:    logrus.WithField("component", "cron"),
	}
}

// Start registers all jobs and starts the scheduler.
func (m *CronManager) Start() error {
	m.log.Info("starting cron jobs")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()
	m.log.Info("cron jobs started")
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish.
func (m *CronManager) Stop() {
	m.log.Info("stopping cron jobs")
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info("cron jobs stopped")
}

func (m *CronManager) registerJobs() error {
	// Every 5 minutes: retry queued mirror events
	_, err := m.cron.AddFunc("0 */5 * * * *", func() {
		m.log.WithField("job", "flush_mirror_queue").Info("job started")
		m.FlushMirrorQueue()
	})
	if err != nil {
		return err
	}

	// Daily at 2 AM: flip stale unread notifications to read
	_, err = m.cron.AddFunc("0 0 2 * * *", func() {
		m.log.WithField("job", "mark_stale_notifications").Info("job started")
		m.MarkStaleNotificationsRead()
	})
	if err != nil {
		return err
	}

	return nil
}
