package auth

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Lightahhh/Mccookies/database"
	"github.com/Lightahhh/Mccookies/models"
	"github.com/Lightahhh/Mccookies/utils"
	"github.com/Lightahhh/Mccookies/views"
)

// GET /login
func LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "login.html", views.Page{
		Title:   "Log in",
		Flashes: utils.Flashes(w, r),
	})
}

// POST /login
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		_ = utils.AddFlash(w, r, "Email and password are required!")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	user, err := models.FindUserByEmail(database.DB, email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[login] user lookup: %v", err)
		}
		// Deliberately the same message for unknown email and wrong password.
		_ = utils.AddFlash(w, r, "Invalid email or password!")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		_ = utils.AddFlash(w, r, "Invalid email or password!")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := utils.SetSessionUser(w, r, user.ID); err != nil {
		log.Printf("[login] session save: %v", err)
	}
	_ = utils.AddFlash(w, r, "Login successful!")
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
