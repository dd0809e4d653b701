package admins

import (
	"net/http"

	"github.com/gorilla/mux"

	"earnmedia/models"
	"earnmedia/utils"
)

// GET /v1/admin/submissions?status=pending
// Without a status filter the response is the moderation queue (pending only);
// status=all returns everything.
func ListSubmissionsHandler(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", "all", models.SubmissionPending, models.SubmissionApproved, models.SubmissionRejected:
	default:
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid status filter"})
		return
	}

	var (
		subs interface{}
		err  error
	)
	switch status {
	case "":
		subs, err = svc().ListPending()
	case "all":
		subs, err = svc().ListSubmissions("")
	default:
		subs, err = svc().ListSubmissions(status)
	}
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "DB error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: subs})
}

// PUT /v1/admin/submissions/{id}/approve
func ApproveSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid submission id"})
		return
	}

	if err := svc().Approve(id); err != nil {
		writeLedgerError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Submission approved"})
}

// PUT /v1/admin/submissions/{id}/reject
func RejectSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid submission id"})
		return
	}

	if err := svc().Reject(id); err != nil {
		writeLedgerError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Submission rejected"})
}
