package auth

import (
	"log"
	"net/http"

	"github.com/Lightahhh/Mccookies/utils"
)

// GET /logout
//
// Clearing is unconditional and idempotent: logging out without an active
// session leaves the same end state.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := utils.ClearSessionUser(w, r); err != nil {
		log.Printf("[logout] session clear: %v", err)
	}
	_ = utils.AddFlash(w, r, "You have been logged out.")
	http.Redirect(w, r, "/", http.StatusFound)
}
