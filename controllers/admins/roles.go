package admins

import (
	"encoding/json"
	"net/http"

	"earnmedia/utils"
)

type roleRequest struct {
	Role string `json:"role"`
}

// POST /v1/admin/users/{id}/roles
func GrantRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	var req roleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Role == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "role is required"})
		return
	}

	if err := svc().GrantRole(id, req.Role); err != nil {
		writeLedgerError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Role granted"})
}

// DELETE /v1/admin/users/{id}/roles
func RevokeRoleHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid user id"})
		return
	}

	var req roleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Role == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "role is required"})
		return
	}

	if err := svc().RevokeRole(id, req.Role); err != nil {
		writeLedgerError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Role revoked"})
}
