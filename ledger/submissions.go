package ledger

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"earnmedia/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmitResult reports the outcome of a submission attempt. Accepted=false
// with a nil error means the account already has a pending submission.
type SubmitResult struct {
	Accepted     bool   `json:"accepted"`
	SubmissionID string `json:"submission_id,omitempty"`
}

// PendingSubmission is a moderation-queue row with the submitter's name.
type PendingSubmission struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	VideoURL  string    `json:"video_url"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Submit creates a pending submission for moderation. An account may have at
// most one pending submission; the user row is locked to serialize concurrent
// attempts from the same account.
func (s *Service) Submit(userID uint, videoURL string) (SubmitResult, error) {
	if err := validateVideoURL(videoURL); err != nil {
		return SubmitResult{}, err
	}

	var out SubmitResult
	err := s.inTx(func(tx *gorm.DB) error {
		if _, err := lockAccounts(tx, userID); err != nil {
			return err
		}
		var pending int64
		if err := tx.Model(&models.Submission{}).
			Where("user_id = ? AND status = ?", userID, models.SubmissionPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			out = SubmitResult{Accepted: false}
			return nil
		}
		sub := models.Submission{
			ID:       uuid.NewString(),
			UserID:   userID,
			VideoURL: videoURL,
			Status:   models.SubmissionPending,
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		out = SubmitResult{Accepted: true, SubmissionID: sub.ID}
		return nil
	})
	return out, err
}

// Approve flips a pending submission to approved and credits the bounty to
// its owner in the same transaction. Terminal submissions fail with
// ErrInvalidState; approval is never a silent no-op.
func (s *Service) Approve(submissionID string) error {
	return s.inTx(func(tx *gorm.DB) error {
		sub, err := lockSubmission(tx, submissionID)
		if err != nil {
			return err
		}
		if sub.Status != models.SubmissionPending {
			return fmt.Errorf("%w: submission is %s", ErrInvalidState, sub.Status)
		}

		pair, err := lockEarnerAndReferrer(tx, sub.UserID)
		if err != nil {
			return err
		}
		res := tx.Model(&models.Submission{}).
			Where("id = ? AND status = ?", submissionID, models.SubmissionPending).
			Update("status", models.SubmissionApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}
		if err := creditLocked(tx, pair.earner, SubmissionBounty, models.TxTypeBounty, "Submission approved"); err != nil {
			return err
		}
		return payCommission(tx, pair, SubmissionBounty)
	})
}

// Reject flips a pending submission to rejected. No balance change.
func (s *Service) Reject(submissionID string) error {
	return s.inTx(func(tx *gorm.DB) error {
		sub, err := lockSubmission(tx, submissionID)
		if err != nil {
			return err
		}
		if sub.Status != models.SubmissionPending {
			return fmt.Errorf("%w: submission is %s", ErrInvalidState, sub.Status)
		}
		res := tx.Model(&models.Submission{}).
			Where("id = ? AND status = ?", submissionID, models.SubmissionPending).
			Update("status", models.SubmissionRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}
		return nil
	})
}

// ListSubmissions returns submissions with submitter identity, oldest first,
// optionally filtered by status.
func (s *Service) ListSubmissions(status string) ([]PendingSubmission, error) {
	query := s.db.Table("submissions").
		Select("submissions.id, submissions.user_id, COALESCE(users.username, '') AS username, users.email, submissions.video_url, submissions.status, submissions.created_at").
		Joins("LEFT JOIN users ON submissions.user_id = users.id").
		Order("submissions.created_at ASC")
	if status != "" {
		query = query.Where("submissions.status = ?", status)
	}
	var rows []PendingSubmission
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListPending is the moderation queue: pending submissions, oldest first.
func (s *Service) ListPending() ([]PendingSubmission, error) {
	return s.ListSubmissions(models.SubmissionPending)
}

// OwnSubmissions returns the account's submissions, newest first.
func (s *Service) OwnSubmissions(userID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&subs).Error
	return subs, err
}

func lockSubmission(tx *gorm.DB, id string) (*models.Submission, error) {
	var sub models.Submission
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: submission %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func validateVideoURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > 500 {
		return fmt.Errorf("%w: video url", ErrInvalidArgument)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: video url", ErrInvalidArgument)
	}
	return nil
}
