package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SessionSweeperJob periodically removes expired sessions from the
// session store.
type SessionSweeperJob struct {
	sessions ports.SessionStore
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionSweeperJob creates a job that sweeps the given session store
// once a minute.
func NewSessionSweeperJob(sessions ports.SessionStore, logger *slog.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger.With("component", "session_sweeper_job"),
	}
}

// Start begins the sweep schedule.
func (j *SessionSweeperJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		if removed := j.sessions.DeleteExpired(time.Now()); removed > 0 {
			j.logger.InfoContext(context.Background(), "Swept expired sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweeper job started (running every minute)")
	return nil
}

// Stop stops the sweep schedule.
func (j *SessionSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweeper job stopped")
}
