package config

// CronJob pairs a schedule with the job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs maps job names to statically configured jobs. Jobs can also
// self-register via cron.Register from an init().
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
