package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskType is a catalog entry describing one completable action. Reward edits
// never propagate to already-recorded completions: every Task snapshots the
// reward at completion time.
type TaskType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description   string    `gorm:"size:255;not null" json:"description"`
	CookiesReward int64     `gorm:"not null" json:"cookies_reward"`
	TaskURL       string    `gorm:"size:255" json:"task_url"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func (TaskType) TableName() string {
	return "task_types"
}

// Task is the immutable receipt of one reward-granting completion. TaskType
// name, description and reward are denormalized copies, not live references.
type Task struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	TaskType      string    `gorm:"size:100;not null" json:"task_type"`
	TaskName      string    `gorm:"size:255;not null" json:"task_name"`
	TaskURL       string    `gorm:"size:255" json:"task_url"`
	CookiesReward int64     `gorm:"not null" json:"cookies_reward"`
	Status        string    `gorm:"size:20;not null;default:'completed'" json:"status"`
	CompletedAt   time.Time `json:"completed_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// ActiveTaskTypes returns the active catalog in insertion order.
func ActiveTaskTypes(db *gorm.DB) ([]TaskType, error) {
	var taskTypes []TaskType
	if err := db.Where("is_active = ?", true).Order("id ASC").Find(&taskTypes).Error; err != nil {
		return nil, err
	}
	return taskTypes, nil
}

// TasksForUser returns the user's most recent completions, newest first.
func TasksForUser(db *gorm.DB, userID uint, limit int) ([]Task, error) {
	var tasks []Task
	if err := db.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
