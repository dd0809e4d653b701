package users

import (
	"encoding/json"
	"net/http"

	"earnmedia/ledger"
	"earnmedia/utils"
)

// GET /v1/users/vip
func VipTiersHandler(w http.ResponseWriter, r *http.Request) {
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

	var tiers []map[string]interface{}
	for _, t := range ledger.CommissionTable() {
		price, _ := ledger.VipPrice(t.Vip)
		tiers = append(tiers, map[string]interface{}{
			"vip":                t.Vip,
			"price":              price,
			"commission_percent": t.Percent,
			"owned":              t.Vip <= user.VipLevel,
		})
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"current_level": user.VipLevel,
			"tiers":         tiers,
		},
	})
}

// POST /v1/users/vip
func VipBuyHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req struct {
		Level int `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request"})
		return
	}

	newBalance, err := svc().BuyVip(uid, req.Level)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "VIP upgraded",
		Data: map[string]interface{}{
			"vip_level":   req.Level,
			"new_balance": newBalance,
		},
	})
}
