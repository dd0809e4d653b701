package ledger

import (
	"fmt"
	"regexp"

	"earnmedia/models"
	"earnmedia/utils"

	"gorm.io/gorm"
)

// MinWithdrawal is the smallest payout the ledger will hold funds for.
const MinWithdrawal = 10.00

var trc20Address = regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`)

// RequestWithdrawal places a balance hold and records a pending payout to a
// TRC-20 address. Settlement is out of band; only the hold and the record are
// ledger-side, and they commit together.
func (s *Service) RequestWithdrawal(userID uint, amount float64, address string) (*models.Withdrawal, error) {
	if amount < MinWithdrawal {
		return nil, fmt.Errorf("%w: minimum withdrawal is %.2f", ErrInvalidArgument, MinWithdrawal)
	}
	if !trc20Address.MatchString(address) {
		return nil, fmt.Errorf("%w: invalid TRC-20 address", ErrInvalidArgument)
	}

	var wd models.Withdrawal
	err := s.inTx(func(tx *gorm.DB) error {
		locked, err := lockAccounts(tx, userID)
		if err != nil {
			return err
		}
		u := locked[userID]
		if err := creditLocked(tx, u, -amount, models.TxTypeWithdrawal, "Withdrawal hold"); err != nil {
			return err
		}
		wd = models.Withdrawal{
			UserID:  userID,
			Amount:  amount,
			Address: address,
			OrderID: utils.GenerateOrderID(userID),
			Status:  "Pending",
		}
		return tx.Create(&wd).Error
	})
	if err != nil {
		return nil, err
	}
	return &wd, nil
}

// ListWithdrawals returns the account's payout requests, newest first.
func (s *Service) ListWithdrawals(userID uint) ([]models.Withdrawal, error) {
	var rows []models.Withdrawal
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&rows).Error
	return rows, err
}
