package users

import (
	"net/http"

	"earnmedia/ledger"
	"earnmedia/utils"
)

// GET /v1/users/referrals
func ReferralHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	s := svc()
	user, err := s.GetProfile(uid)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	count, err := s.CountReferrals(user.ReferralCode)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "DB error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"referral_code":      user.ReferralCode,
			"referral_count":     count,
			"commission_earned":  user.CommissionEarned,
			"commission_percent": ledger.CommissionPercent(user.VipLevel),
			"commission_tiers":   ledger.CommissionTable(),
		},
	})
}
