package models

import "time"

const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Submission is a user-posted video awaiting moderation. Rows are created by
// the submit operation and mutated exactly once by an approve/reject decision.
type Submission struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	VideoURL  string    `gorm:"size:500;not null" json:"video_url"`
	Status    string    `gorm:"type:enum('pending','approved','rejected');not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}
