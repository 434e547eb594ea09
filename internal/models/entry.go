package models

import (
	"time"
)

// Entry represents one tracked span of work. A nil EndTime means the
// entry is still running; at most one such entry exists at a time.
type Entry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`

	TaskName  string     `gorm:"column:task_name;not null" json:"task_name"`
	Project   *string    `gorm:"column:project" json:"project"`
	StartTime time.Time  `gorm:"column:start_time;not null" json:"start_time"`
	EndTime   *time.Time `gorm:"column:end_time" json:"end_time"`

	// Reserved for heartbeat tracking; nothing writes it yet.
	LastActivity *time.Time `gorm:"column:last_activity" json:"last_activity"`
}

// TableName overrides gorm's pluralized default to match the migration SQL.
func (Entry) TableName() string {
	return "entries"
}

// Active reports whether the entry is still running.
func (e *Entry) Active() bool {
	return e.EndTime == nil
}

// Duration returns the elapsed span, or nil while the entry is active.
func (e *Entry) Duration() *time.Duration {
	if e.EndTime == nil {
		return nil
	}
	d := e.EndTime.Sub(e.StartTime)
	return &d
}
