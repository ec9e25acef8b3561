package application

import "expvar"

// Counters published on /debug/vars.
var (
	entriesCreated   = expvar.NewInt("entries_created")
	entriesUpdated   = expvar.NewInt("entries_updated")
	planEmailsSent   = expvar.NewInt("plan_emails_sent")
	planEmailsFailed = expvar.NewInt("plan_emails_failed")
	planEmailsQueued = expvar.NewInt("plan_emails_queued")
	mealsLogged      = expvar.NewInt("meals_logged")
)
