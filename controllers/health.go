package controllers

import (
	"net/http"

	"github.com/Lightahhh/Mccookies/database"
	"github.com/Lightahhh/Mccookies/utils"
)

// GET /health
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	dbStatus := "connected"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.PingContext(r.Context()) != nil {
		dbStatus = "unavailable"
	}
	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"database": dbStatus,
	})
}
