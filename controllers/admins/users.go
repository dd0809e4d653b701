package admins

import (
	"encoding/json"
	"net/http"
	"strconv"

	"earnmedia/utils"
)

// GET /v1/admin/users
func ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	users, err := svc().ListUsers(offset, limit)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "DB error"})
		return
	}

	resp := make([]map[string]interface{}, 0, len(users))
	for _, u := range users {
		resp = append(resp, map[string]interface{}{
			"id":                u.ID,
			"name":              utils.GetStringValue(u.Username),
			"email":             u.Email,
			"referral_code":     u.ReferralCode,
			"balance":           u.Balance,
			"commission_earned": u.CommissionEarned,
			"vip_level":         u.VipLevel,
			"created_at":        u.CreatedAt,
		})
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: resp})
}

// PUT /v1/admin/users/{id}
func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	var req struct {
		Balance  float64 `json:"balance"`
		VipLevel int     `json:"vip_level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request"})
		return
	}

	if err := svc().UpdateUser(id, req.Balance, req.VipLevel); err != nil {
		writeLedgerError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "User updated"})
}

// POST /v1/admin/users/{id}/bonus
func AddBonusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request"})
		return
	}

	newBalance, err := svc().AddBonus(id, req.Amount)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Bonus credited",
		Data:    map[string]float64{"new_balance": newBalance},
	})
}

// POST /v1/admin/users/{id}/reset-balance
func ResetBalanceHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	if err := svc().ResetBalance(id); err != nil {
		writeLedgerError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Balance reset"})
}
