package ledger

import (
	"earnmedia/models"

	"gorm.io/gorm"
)

// ListTransactions returns a page of a user's ledger entries, newest first,
// optionally filtered by transaction type.
func (s *Service) ListTransactions(userID uint, txType string, offset, limit int) ([]models.Transaction, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	if txType != "" {
		base = base.Where("transaction_type = ?", txType)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var txs []models.Transaction
	err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&txs).Error
	return txs, total, err
}
