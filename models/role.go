package models

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// UserRole grants an elevated role to a user. A user without rows here holds
// the implicit "user" role only.
type UserRole struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_role" json:"user_id"`
	Role   string `gorm:"type:enum('admin','moderator');not null;uniqueIndex:idx_user_role" json:"role"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
