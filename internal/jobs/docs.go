// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are cron-based, using github.com/robfig/cron/v3, and are managed
// through JobManager:
//
//	jobManager := jobs.NewJobManager(sessionStore, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is SessionSweeperJob, which runs every minute and
// evicts expired sessions from the in-process session store. Sweeping is
// hygiene, not enforcement: the access policy already rejects expired
// sessions on every request, the sweeper just reclaims the memory.
package jobs
