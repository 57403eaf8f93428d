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

// GET /signup
func SignupPageHandler(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "signup.html", views.Page{
		Title:   "Sign up",
		Flashes: utils.Flashes(w, r),
	})
}

// POST /signup
func SignupHandler(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	if email == "" || username == "" || password == "" {
		_ = utils.AddFlash(w, r, "All fields are required!")
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	db := database.DB

	// One combined lookup covers both uniqueness constraints.
	if _, err := models.FindUserByEmailOrUsername(db, email, username); err == nil {
		_ = utils.AddFlash(w, r, "User with this email or username already exists!")
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[signup] duplicate lookup: %v", err)
		_ = utils.AddFlash(w, r, "Error creating account. Please try again.")
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[signup] password hash: %v", err)
		_ = utils.AddFlash(w, r, "Error creating account. Please try again.")
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Printf("[signup] create user: %v", err)
		_ = utils.AddFlash(w, r, "Error creating account. Please try again.")
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	if err := utils.SetSessionUser(w, r, user.ID); err != nil {
		log.Printf("[signup] session save: %v", err)
	}
	_ = utils.AddFlash(w, r, "Account created successfully!")
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}
