package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Username         *string   `gorm:"size:100" json:"username,omitempty"`
	Email            string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password         string    `gorm:"size:255;not null" json:"-"`
	ReferralCode     string    `gorm:"size:20;uniqueIndex;not null" json:"referral_code"`
	ReferredBy       *string   `gorm:"size:20" json:"referred_by,omitempty"`
	Balance          float64   `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CommissionEarned float64   `gorm:"type:decimal(15,2);not null;default:0" json:"commission_earned"`
	VipLevel         int       `gorm:"not null;default:1" json:"vip_level"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
