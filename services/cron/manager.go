package cron

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/studytrack/studytrack-api/model"
	"github.com/studytrack/studytrack-api/utils/auth"
	applog "github.com/studytrack/studytrack-api/utils/logger"
	"gorm.io/gorm"
)

const (
	jobCleanupExpiredTokens = "cleanup_expired_tokens"
	jobCleanupCronLogs      = "cleanup_cron_logs"

	// cronLogRetention is how long job run records are kept
	cronLogRetention = 90 * 24 * time.Hour
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron      *cron.Cron
	db        *gorm.DB
	log       *applog.Logger
	blacklist *auth.BlacklistService
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB, lg *applog.Logger) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:      c,
		db:        db,
		log:       lg,
		blacklist: auth.NewBlacklistService(db),
	}
}

// Start registers all jobs and starts the scheduler
func (m *CronManager) Start() error {
	m.log.Info("Starting cron jobs")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	m.log.Info("Cron jobs started", "entries", len(m.cron.Entries()))
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (m *CronManager) Stop() {
	m.log.Info("Stopping cron jobs")
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	// Every hour: drop blacklist entries whose tokens have expired anyway
	if _, err := m.cron.AddFunc("0 0 * * * *", m.CleanupExpiredTokens); err != nil {
		return err
	}

	// Daily at 3 AM: drop old job run records
	if _, err := m.cron.AddFunc("0 0 3 * * *", m.CleanupCronLogs); err != nil {
		return err
	}

	return nil
}

// logJobStart records the start of a job run and returns the run record
func (m *CronManager) logJobStart(jobName string) *model.CronJobLog {
	m.log.Info("Starting cron job", "job", jobName)

	run := &model.CronJobLog{
		JobName:   jobName,
		Status:    model.CronJobRunning,
		StartedAt: time.Now(),
	}
	if err := m.db.Create(run).Error; err != nil {
		m.log.Warn("Failed to record cron job start", "job", jobName, "error", err)
	}
	return run
}

// logJobComplete marks a job run as completed
func (m *CronManager) logJobComplete(run *model.CronJobLog, message string) {
	m.log.Info("Completed cron job", "job", run.JobName, "message", message)
	m.finishRun(run, model.CronJobCompleted, message, "")
}

// logJobError marks a job run as failed
func (m *CronManager) logJobError(run *model.CronJobLog, err error) {
	m.log.Error("Cron job failed", "job", run.JobName, "error", err)
	m.finishRun(run, model.CronJobFailed, "", err.Error())
}

func (m *CronManager) finishRun(run *model.CronJobLog, status model.CronJobStatus, message, errMsg string) {
	if run.ID == 0 {
		return
	}

	now := time.Now()
	err := m.db.Model(run).Updates(map[string]interface{}{
		"status":       status,
		"completed_at": now,
		"duration":     now.Sub(run.StartedAt).Milliseconds(),
		"message":      message,
		"error_msg":    errMsg,
	}).Error
	if err != nil {
		m.log.Warn("Failed to record cron job result", "job", run.JobName, "error", err)
	}
}
