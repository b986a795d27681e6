package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/studytrack/studytrack-api/model"
)

// CleanupExpiredTokens removes blacklist entries for tokens that are past their expiry
func (m *CronManager) CleanupExpiredTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	run := m.logJobStart(jobCleanupExpiredTokens)

	removed, err := m.blacklist.CleanupExpiredTokens(ctx)
	if err != nil {
		m.logJobError(run, fmt.Errorf("failed to clean token blacklist: %w", err))
		return
	}

	m.logJobComplete(run, fmt.Sprintf("Removed %d expired tokens", removed))
}

// CleanupCronLogs removes job run records older than the retention window
func (m *CronManager) CleanupCronLogs() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	run := m.logJobStart(jobCleanupCronLogs)

	cutoff := time.Now().Add(-cronLogRetention)
	result := m.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.CronJobLog{})
	if result.Error != nil {
		m.logJobError(run, fmt.Errorf("failed to clean cron logs: %w", result.Error))
		return
	}

	m.logJobComplete(run, fmt.Sprintf("Removed %d old cron logs", result.RowsAffected))
}
