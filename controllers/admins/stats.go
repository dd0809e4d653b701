package admins

import (
	"net/http"

	"earnmedia/utils"
)

// GET /v1/admin/stats
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := svc().GetStats()
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "DB error"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: stats})
}
