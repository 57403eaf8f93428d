package users

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/Lightahhh/Mccookies/database"
	"github.com/Lightahhh/Mccookies/middleware"
	"github.com/Lightahhh/Mccookies/models"
	"github.com/Lightahhh/Mccookies/utils"
)

type completeTaskRequest struct {
	TaskTypeID uint   `json:"task_type_id"`
	TaskURL    string `json:"task_url"`
}

// POST /complete_task
//
// Records one completion: a Task row snapshotting the task type as of now,
// plus both user counters, credited in a single transaction. There is no
// dedup or per-type cap; repeat completions each grant the full reward.
func CompleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req completeTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if req.TaskTypeID == 0 {
		utils.WriteError(w, http.StatusBadRequest, "Task type is required")
		return
	}

	db := database.DB

	// Unknown and inactive task types map to the same error on purpose.
	var taskType models.TaskType
	if err := db.First(&taskType, req.TaskTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusBadRequest, "Invalid task type")
			return
		}
		log.Printf("[ledger] task type lookup %d: %v", req.TaskTypeID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to complete task")
		return
	}
	if !taskType.IsActive {
		utils.WriteError(w, http.StatusBadRequest, "Invalid task type")
		return
	}

	var updated models.User
	if err := db.Transaction(func(tx *gorm.DB) error {
		task := models.Task{
			UserID:        user.ID,
			TaskType:      taskType.Name,
			TaskName:      taskType.Description,
			TaskURL:       req.TaskURL,
			CookiesReward: taskType.CookiesReward,
			Status:        "completed",
			CompletedAt:   time.Now(),
		}
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		// Increment in SQL so concurrent completions serialize instead of
		// losing updates to a read-modify-write race.
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"cookies_earned":        gorm.Expr("cookies_earned + ?", taskType.CookiesReward),
			"total_tasks_completed": gorm.Expr("total_tasks_completed + ?", 1),
		}).Error; err != nil {
			return err
		}
		return tx.First(&updated, user.ID).Error
	}); err != nil {
		log.Printf("[ledger] complete task type %d for user %d: %v", taskType.ID, user.ID, err)
		utils.WriteError(w, http.StatusInternalServerError, "Failed to complete task")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"message":        "Task completed successfully!",
		"cookies_earned": taskType.CookiesReward,
		"total_cookies":  updated.CookiesEarned,
		"total_tasks":    updated.TotalTasksCompleted,
	})
}
