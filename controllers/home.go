package controllers

import (
	"net/http"

	"github.com/Lightahhh/Mccookies/utils"
	"github.com/Lightahhh/Mccookies/views"
)

// GET /
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "index.html", views.Page{
		Title:   "Mccookies",
		Flashes: utils.Flashes(w, r),
	})
}
