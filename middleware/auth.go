package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"

	"github.com/Lightahhh/Mccookies/database"
	"github.com/Lightahhh/Mccookies/models"
	"github.com/Lightahhh/Mccookies/utils"
)

// The session gate distinguishes two failure modes: no session at all, and a
// session whose user no longer resolves (deleted out-of-band). The latter
// clears the stale session first so it is never treated as a valid identity.

// RequireUserAPI gates JSON endpoints on an authenticated session.
func RequireUserAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.SessionUserID(r)
		if !ok {
			utils.WriteError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		user, err := resolveUser(uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = utils.ClearSessionUser(w, r)
				utils.WriteError(w, http.StatusUnauthorized, "User not found")
				return
			}
			log.Printf("[session] resolve user %d: %v", uid, err)
			utils.WriteError(w, http.StatusInternalServerError, "Server error")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// RequireUserPage gates server-rendered pages; failures redirect to the login
// page with a flash message instead of answering JSON.
func RequireUserPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := utils.SessionUserID(r)
		if !ok {
			_ = utils.AddFlash(w, r, "Please log in to access dashboard.")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		user, err := resolveUser(uid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				_ = utils.ClearSessionUser(w, r)
				_ = utils.AddFlash(w, r, "User not found. Please log in again.")
			} else {
				log.Printf("[session] resolve user %d: %v", uid, err)
				_ = utils.AddFlash(w, r, "Something went wrong. Please log in again.")
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
	})
}

// CurrentUser returns the user the session gate resolved for this request.
func CurrentUser(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(utils.UserKey).(*models.User)
	return user, ok
}

func withUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, utils.UserKey, user)
}

func resolveUser(uid uint) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, uid).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
