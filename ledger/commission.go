package ledger

import (
	"errors"

	"earnmedia/models"
	"earnmedia/utils"

	"gorm.io/gorm"
)

// CommissionTier pairs a VIP level with its referral commission percentage.
type CommissionTier struct {
	Vip     int `json:"vip"`
	Percent int `json:"percent"`
}

var commissionTable = []CommissionTier{
	{Vip: 1, Percent: 8},
	{Vip: 2, Percent: 15},
	{Vip: 3, Percent: 20},
	{Vip: 4, Percent: 25},
	{Vip: 5, Percent: 35},
}

// CommissionTable returns the tier table, lowest tier first.
func CommissionTable() []CommissionTier {
	out := make([]CommissionTier, len(commissionTable))
	copy(out, commissionTable)
	return out
}

// CommissionPercent returns the referral commission percentage for a VIP
// level. Levels outside 1..5 pay nothing.
func CommissionPercent(vipLevel int) int {
	for _, t := range commissionTable {
		if t.Vip == vipLevel {
			return t.Percent
		}
	}
	return 0
}

// referrerOf resolves the account that referred u by following its immutable
// referred_by code. Returns nil when u has no referrer or the code no longer
// resolves; neither case is an error.
func referrerOf(tx *gorm.DB, u *models.User) (*models.User, error) {
	if u.ReferredBy == nil || *u.ReferredBy == "" {
		return nil, nil
	}
	var ref models.User
	err := tx.Where("referral_code = ?", *u.ReferredBy).Take(&ref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// payCommission credits the referrer's share of a qualifying earning event.
// Both account rows must already be locked by the caller; the referrer's
// lifetime commission counter moves together with its balance.
func payCommission(tx *gorm.DB, p *lockedPair, eventAmount float64) error {
	if p.referrer == nil {
		return nil
	}
	pct := CommissionPercent(p.referrer.VipLevel)
	cut := utils.RoundFloat(eventAmount*float64(pct)/100, 2)
	if cut <= 0 {
		return nil
	}
	if err := creditLocked(tx, p.referrer, cut, models.TxTypeCommission, "Referral commission"); err != nil {
		return err
	}
	if err := tx.Model(&models.User{}).Where("id = ?", p.referrer.ID).
		Update("commission_earned", gorm.Expr("commission_earned + ?", cut)).Error; err != nil {
		return err
	}
	p.referrer.CommissionEarned = utils.RoundFloat(p.referrer.CommissionEarned+cut, 2)
	return nil
}
