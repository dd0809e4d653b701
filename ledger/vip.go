package ledger

import (
	"fmt"

	"earnmedia/models"

	"gorm.io/gorm"
)

var vipPrices = map[int]float64{
	1: 50,
	2: 99,
	3: 155,
	4: 230,
	5: 320,
}

// VipPrice returns the purchase price of a tier, or false for an unknown tier.
func VipPrice(tier int) (float64, bool) {
	p, ok := vipPrices[tier]
	return p, ok
}

// BuyVip debits the tier price and upgrades the account. Purchases only move
// upward; the debit and the level change commit together.
func (s *Service) BuyVip(userID uint, tier int) (float64, error) {
	price, ok := VipPrice(tier)
	if !ok {
		return 0, fmt.Errorf("%w: vip tier %d out of range", ErrInvalidArgument, tier)
	}

	var newBalance float64
	err := s.inTx(func(tx *gorm.DB) error {
		locked, err := lockAccounts(tx, userID)
		if err != nil {
			return err
		}
		u := locked[userID]
		if tier <= u.VipLevel {
			return fmt.Errorf("%w: already at vip %d", ErrInvalidState, u.VipLevel)
		}
		if err := creditLocked(tx, u, -price, models.TxTypeVip, fmt.Sprintf("VIP %d purchase", tier)); err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("vip_level", tier).Error; err != nil {
			return err
		}
		newBalance = u.Balance
		return nil
	})
	return newBalance, err
}
