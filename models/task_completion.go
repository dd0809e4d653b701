package models

import "time"

// TaskCompletion is append-only: one row per (user, task) ever credited. The
// composite unique index is what makes repeated completion attempts no-ops.
type TaskCompletion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_task" json:"user_id"`
	TaskID    string    `gorm:"size:50;not null;uniqueIndex:idx_user_task" json:"task_id"`
	Reward    float64   `gorm:"type:decimal(15,2);not null" json:"reward"`
	CreatedAt time.Time `json:"created_at"`
}

func (TaskCompletion) TableName() string {
	return "task_completions"
}
