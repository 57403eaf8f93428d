package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Email               string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Username            string    `gorm:"size:80;uniqueIndex;not null" json:"username"`
	PasswordHash        string    `gorm:"size:255;not null" json:"-"`
	CookiesEarned       int64     `gorm:"not null;default:0" json:"cookies_earned"`
	TotalTasksCompleted int64     `gorm:"not null;default:0" json:"total_tasks_completed"`
	IsActive            bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Stats is the public projection of a user's identity and running totals.
func (u *User) Stats() map[string]interface{} {
	return map[string]interface{}{
		"id":                    u.ID,
		"email":                 u.Email,
		"username":              u.Username,
		"cookies_earned":        u.CookiesEarned,
		"total_tasks_completed": u.TotalTasksCompleted,
		"created_at":            u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FindUserByEmail looks a user up by exact email.
func FindUserByEmail(db *gorm.DB, email string) (*User, error) {
	var user User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByEmailOrUsername is the combined duplicate-identity lookup used at
// registration: one query, case-sensitive exact match on either column.
func FindUserByEmailOrUsername(db *gorm.DB, email, username string) (*User, error) {
	var user User
	if err := db.Where("email = ? OR username = ?", email, username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
