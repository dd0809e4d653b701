package users

import (
	"encoding/json"
	"net/http"

	"earnmedia/ledger"
	"earnmedia/utils"
)

// GET /v1/users/tasks
func TaskListHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	done, err := svc().CompletedTasks(uid)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "DB error"})
		return
	}

	var resp []map[string]interface{}
	for _, t := range ledger.Tasks() {
		resp = append(resp, map[string]interface{}{
			"id":     t.ID,
			"title":  t.Title,
			"reward": t.Reward,
			"done":   done[t.ID],
		})
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: resp})
}

// POST /v1/users/tasks/complete
func TaskCompleteHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var req struct {
		TaskID string `json:"task_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TaskID == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid request"})
		return
	}

	// The reward is resolved server-side from the catalog; the request only
	// names the task.
	result, err := svc().CompleteTask(uid, req.TaskID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	msg := "Task reward credited"
	if !result.Credited {
		msg = "Task already completed"
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: msg,
		Data: map[string]interface{}{
			"credited":    result.Credited,
			"new_balance": result.NewBalance,
		},
	})
}
