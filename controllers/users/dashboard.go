package users

import (
	"log"
	"net/http"

	"github.com/Lightahhh/Mccookies/database"
	"github.com/Lightahhh/Mccookies/middleware"
	"github.com/Lightahhh/Mccookies/models"
	"github.com/Lightahhh/Mccookies/utils"
	"github.com/Lightahhh/Mccookies/views"
)

const recentTaskLimit = 10

// GET /dashboard
func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	db := database.DB
	taskTypes, err := models.ActiveTaskTypes(db)
	if err != nil {
		log.Printf("[dashboard] list task types: %v", err)
	}
	recent, err := models.TasksForUser(db, user.ID, recentTaskLimit)
	if err != nil {
		log.Printf("[dashboard] recent tasks for user %d: %v", user.ID, err)
	}

	views.Render(w, "dashboard.html", views.Page{
		Title:       "Dashboard",
		Flashes:     utils.Flashes(w, r),
		User:        user,
		TaskTypes:   taskTypes,
		RecentTasks: recent,
	})
}
