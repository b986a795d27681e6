package model

import "time"

// CronJobStatus is the lifecycle state of one scheduled job run
type CronJobStatus string

const (
	CronJobRunning   CronJobStatus = "running"
	CronJobCompleted CronJobStatus = "completed"
	CronJobFailed    CronJobStatus = "failed"
)

// CronJobLog records one execution of a background job
type CronJobLog struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	JobName     string        `gorm:"type:varchar(100);not null;index" json:"job_name"`
	Status      CronJobStatus `gorm:"type:varchar(20);not null" json:"status"`
	StartedAt   time.Time     `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at"`
	Duration    int64         `json:"duration_ms"`
	Message     string        `gorm:"type:text" json:"message"`
	ErrorMsg    string        `gorm:"type:text" json:"error_msg"`
	CreatedAt   time.Time     `json:"created_at"`
}

// TableName specifies the table name for CronJobLog
func (CronJobLog) TableName() string {
	return "cron_job_logs"
}
