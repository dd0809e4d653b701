package ledger

import (
	"fmt"

	"earnmedia/models"

	"gorm.io/gorm/clause"
)

// RolesOf returns the elevated roles held by an account. An empty slice means
// the implicit "user" role only.
func (s *Service) RolesOf(userID uint) ([]string, error) {
	var rows []models.UserRole
	if err := s.db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	roles := make([]string, 0, len(rows))
	for _, r := range rows {
		roles = append(roles, r.Role)
	}
	return roles, nil
}

// GrantRole assigns an elevated role. Granting an already-held role is a no-op.
func (s *Service) GrantRole(userID uint, role string) error {
	if role != models.RoleAdmin && role != models.RoleModerator {
		return fmt.Errorf("%w: role %q", ErrInvalidArgument, role)
	}
	if _, err := s.GetProfile(userID); err != nil {
		return err
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserRole{UserID: userID, Role: role}).Error
}

// RevokeRole removes an elevated role if held.
func (s *Service) RevokeRole(userID uint, role string) error {
	if role != models.RoleAdmin && role != models.RoleModerator {
		return fmt.Errorf("%w: role %q", ErrInvalidArgument, role)
	}
	return s.db.Where("user_id = ? AND role = ?", userID, role).
		Delete(&models.UserRole{}).Error
}
