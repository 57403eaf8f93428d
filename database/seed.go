package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/Lightahhh/Mccookies/models"
)

// defaultTaskTypes is the catalog installed on first boot.
var defaultTaskTypes = []models.TaskType{
	{Name: "survey", Description: "Complete Online Survey", CookiesReward: 10, TaskURL: "https://example.com/survey"},
	{Name: "video_watch", Description: "Watch YouTube Video", CookiesReward: 5, TaskURL: "https://youtube.com/watch?v=example"},
	{Name: "social_follow", Description: "Follow Social Media Account", CookiesReward: 3, TaskURL: "https://twitter.com/example"},
	{Name: "app_install", Description: "Install Mobile App", CookiesReward: 15, TaskURL: "https://play.google.com/store/apps/details?id=example"},
	{Name: "website_visit", Description: "Visit Partner Website", CookiesReward: 2, TaskURL: "https://example.com"},
}

// SeedTaskTypes populates the default task catalog when the table is empty.
// An already-populated catalog is left untouched, so the seed runs at most
// once per database.
func SeedTaskTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TaskType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[database] task types already exist, skipping seed")
		return nil
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		for i := range defaultTaskTypes {
			tt := defaultTaskTypes[i]
			if err := tx.Create(&tt).Error; err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	log.Printf("[database] seeded %d default task types", len(defaultTaskTypes))
	return nil
}
