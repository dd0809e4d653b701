package ledger

import (
	"fmt"

	"earnmedia/models"

	"gorm.io/gorm"
)

// Stats is the admin dashboard aggregate.
type Stats struct {
	TotalUsers   int64   `json:"total_users"`
	TotalBalance float64 `json:"total_balance"`
}

// AddBonus credits a positive amount to an account. Zero or negative amounts
// fail with ErrInvalidArgument and leave the balance untouched.
func (s *Service) AddBonus(userID uint, amount float64) (float64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: bonus amount must be positive", ErrInvalidArgument)
	}
	return s.AdjustBalance(userID, amount, models.TxTypeAdminBonus, "Admin bonus")
}

// ResetBalance zeroes an account's balance. Not reversible; the debit is
// audited like any other mutation.
func (s *Service) ResetBalance(userID uint) error {
	return s.inTx(func(tx *gorm.DB) error {
		locked, err := lockAccounts(tx, userID)
		if err != nil {
			return err
		}
		u := locked[userID]
		if u.Balance == 0 {
			return nil
		}
		return creditLocked(tx, u, -u.Balance, models.TxTypeAdminReset, "Admin balance reset")
	})
}

// UpdateUser overwrites balance and VIP tier directly. Both values are
// validated; the overwrite is audited with the delta it caused.
func (s *Service) UpdateUser(userID uint, balance float64, vipTier int) error {
	if vipTier < 1 || vipTier > 5 {
		return fmt.Errorf("%w: vip tier %d out of range", ErrInvalidArgument, vipTier)
	}
	if balance < 0 {
		return fmt.Errorf("%w: balance must not be negative", ErrInvalidArgument)
	}
	return s.inTx(func(tx *gorm.DB) error {
		locked, err := lockAccounts(tx, userID)
		if err != nil {
			return err
		}
		u := locked[userID]
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Updates(map[string]interface{}{"vip_level": vipTier}).Error; err != nil {
			return err
		}
		delta := balance - u.Balance
		if delta == 0 {
			return nil
		}
		return creditLocked(tx, u, delta, models.TxTypeAdminSet, "Admin account update")
	})
}

// GetStats returns the user count and the balance held across all accounts.
func (s *Service) GetStats() (Stats, error) {
	var st Stats
	if err := s.db.Model(&models.User{}).Count(&st.TotalUsers).Error; err != nil {
		return st, err
	}
	if err := s.db.Model(&models.User{}).
		Select("COALESCE(SUM(balance), 0)").Scan(&st.TotalBalance).Error; err != nil {
		return st, err
	}
	return st, nil
}

// ListUsers returns account summaries, newest first.
func (s *Service) ListUsers(offset, limit int) ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error
	return users, err
}
