package ledger

import (
	"fmt"

	"earnmedia/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskResult reports the outcome of a completion attempt. Credited=false with
// a nil error means the task was already credited; the balance is current
// either way.
type TaskResult struct {
	Credited   bool    `json:"credited"`
	NewBalance float64 `json:"new_balance"`
}

// CompleteTask credits the catalog reward for taskID exactly once per account.
// The completion insert, the balance credit and any referral commission commit
// as one unit; a duplicate attempt is a graceful no-op.
func (s *Service) CompleteTask(userID uint, taskID string) (TaskResult, error) {
	reward, ok := TaskReward(taskID)
	if !ok {
		return TaskResult{}, fmt.Errorf("%w: unknown task %q", ErrNotFound, taskID)
	}

	var out TaskResult
	err := s.inTx(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.TaskCompletion{
			UserID: userID,
			TaskID: taskID,
			Reward: reward,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// The (user, task) pair already exists: idempotency contract.
			var balance float64
			if err := tx.Model(&models.User{}).Select("balance").
				Where("id = ?", userID).Take(&balance).Error; err != nil {
				return err
			}
			out = TaskResult{Credited: false, NewBalance: balance}
			return nil
		}

		pair, err := lockEarnerAndReferrer(tx, userID)
		if err != nil {
			return err
		}
		if err := creditLocked(tx, pair.earner, reward, models.TxTypeTask, "Task reward: "+taskID); err != nil {
			return err
		}
		if err := payCommission(tx, pair, reward); err != nil {
			return err
		}
		out = TaskResult{Credited: true, NewBalance: pair.earner.Balance}
		return nil
	})
	return out, err
}

// CompletedTasks returns the set of task ids the account has been credited.
func (s *Service) CompletedTasks(userID uint) (map[string]bool, error) {
	var rows []models.TaskCompletion
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(rows))
	for _, r := range rows {
		done[r.TaskID] = true
	}
	return done, nil
}
