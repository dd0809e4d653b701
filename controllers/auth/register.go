package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"earnmedia/database"
	"earnmedia/ledger"
	"earnmedia/middleware"
	"earnmedia/utils"

	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name                 string `json:"name" validate:"nameok"`
	Email                string `json:"email" validate:"required,emailok"`
	Password             string `json:"password" validate:"required,pwdmin"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	ReferralCode         string `json:"referral_code"`
}

func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.ReferralCode = strings.ToUpper(strings.TrimSpace(req.ReferralCode))

	svc := ledger.NewService(database.DB)

	if _, err := svc.FindByEmail(req.Email); err == nil {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Email already registered"})
		return
	} else if err != ledger.ErrNotFound {
		log.Printf("[register] lookup error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Server error"})
		return
	}

	var username *string
	if req.Name != "" {
		username = &req.Name
	}

	// An unknown referral code degrades to no linkage inside CreateAccount.
	user, err := svc.CreateAccount(req.Email, string(hashed), username, req.ReferralCode)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidState) {
			utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Email already registered"})
			return
		}
		log.Printf("[register] create account error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Registration failed, please try again"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, 15*time.Minute)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not issue token"})
		return
	}
	refreshID, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Could not issue refresh token"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Registration successful, welcome!",
		Data: map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshID,
			"user": map[string]interface{}{
				"name":          utils.GetStringValue(user.Username),
				"email":         user.Email,
				"referral_code": user.ReferralCode,
				"balance":       user.Balance,
				"vip_level":     user.VipLevel,
			},
		},
	})
}
