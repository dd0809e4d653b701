package models

import "time"

// RevokedToken is the database fallback for access token jti revocation when
// Redis is not configured.
type RevokedToken struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	RevokedAt time.Time `json:"revoked_at"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
