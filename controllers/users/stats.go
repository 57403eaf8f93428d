package users

import (
	"net/http"

	"github.com/Lightahhh/Mccookies/middleware"
	"github.com/Lightahhh/Mccookies/utils"
)

// GET /user_stats
func UserStatsHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	utils.WriteJSON(w, http.StatusOK, user.Stats())
}
