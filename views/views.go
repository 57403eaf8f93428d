package views

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Lightahhh/Mccookies/models"
)

//go:embed *.html
var files embed.FS

var tmpl = template.Must(template.New("").Funcs(templateFuncs()).ParseFS(files, "*.html"))

// Page is the data handed to every template.
type Page struct {
	Title       string
	Flashes     []string
	User        *models.User
	TaskTypes   []models.TaskType
	RecentTasks []models.Task
}

// Render writes the named template. Render errors are logged, not surfaced:
// by the time execution fails, headers are already on the wire.
func Render(w http.ResponseWriter, name string, page Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, page); err != nil {
		log.Printf("[views] render %s: %v", name, err)
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatTime":   formatTime,
		"formatNumber": formatNumber,
		"capitalize":   capitalize,
	}
}

func formatTime(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}
	var result strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(char)
	}
	return result.String()
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
