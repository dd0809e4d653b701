package users

import (
	"net/http"

	"earnmedia/models"
	"earnmedia/utils"
)

// GET /v1/users/info
func InfoHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	user, err := svc().GetProfile(uid)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"user": map[string]interface{}{
				"id":                user.ID,
				"name":              utils.GetStringValue(user.Username),
				"email":             user.Email,
				"referral_code":     user.ReferralCode,
				"balance":           user.Balance,
				"commission_earned": user.CommissionEarned,
				"vip_level":         user.VipLevel,
				"created_at":        user.CreatedAt,
			},
		},
	})
}

// GET /v1/users/is-admin
func IsAdminHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserID(r); !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data:    map[string]bool{"is_admin": utils.HasRole(r, models.RoleAdmin)},
	})
}
