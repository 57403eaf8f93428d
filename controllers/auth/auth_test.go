package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Lightahhh/Mccookies/database"
	"github.com/Lightahhh/Mccookies/models"
	"github.com/Lightahhh/Mccookies/utils"
)

func TestMain(m *testing.M) {
	utils.InitSessionStore("test-secret", false)
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func postForm(handler http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func signupForm(email, username, password string) url.Values {
	return url.Values{"email": {email}, "username": {username}, "password": {password}}
}

func TestSignup_CreatesUserAndEstablishesSession(t *testing.T) {
	db := newTestDB(t)

	rr := postForm(SignupHandler, "/signup", signupForm("a@x.com", "alice", "pw123"))
	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}

	var user models.User
	if err := db.Where("email = ?", "a@x.com").First(&user).Error; err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if user.Username != "alice" || user.CookiesEarned != 0 || user.TotalTasksCompleted != 0 {
		t.Fatalf("unexpected user row: %+v", user)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if user.PasswordHash == "pw123" {
		t.Fatal("password stored in clear")
	}

	// The response cookies must carry the authenticated session.
	check := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rr.Result().Cookies() {
		check.AddCookie(c)
	}
	if uid, ok := utils.SessionUserID(check); !ok || uid != user.ID {
		t.Fatalf("expected session for user %d, got %d (ok=%v)", user.ID, uid, ok)
	}
}

func TestSignup_MissingFields(t *testing.T) {
	db := newTestDB(t)

	rr := postForm(SignupHandler, "/signup", signupForm("a@x.com", "", "pw123"))
	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/signup" {
		t.Fatalf("expected redirect back to /signup, got %q", loc)
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no users, got %d", count)
	}
}

func TestSignup_DuplicateEmailConflicts(t *testing.T) {
	db := newTestDB(t)

	if rr := postForm(SignupHandler, "/signup", signupForm("a@x.com", "alice", "pw123")); rr.Code != http.StatusFound {
		t.Fatalf("first signup: got %d", rr.Code)
	}
	// Same email, different username.
	rr := postForm(SignupHandler, "/signup", signupForm("a@x.com", "bob", "pw456"))
	if loc := rr.Header().Get("Location"); loc != "/signup" {
		t.Fatalf("expected conflict redirect to /signup, got %q", loc)
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one user after duplicate signup, got %d", count)
	}
}

func TestSignup_DuplicateUsernameConflicts(t *testing.T) {
	db := newTestDB(t)

	if rr := postForm(SignupHandler, "/signup", signupForm("a@x.com", "alice", "pw123")); rr.Code != http.StatusFound {
		t.Fatalf("first signup: got %d", rr.Code)
	}
	rr := postForm(SignupHandler, "/signup", signupForm("b@x.com", "alice", "pw456"))
	if loc := rr.Header().Get("Location"); loc != "/signup" {
		t.Fatalf("expected conflict redirect to /signup, got %q", loc)
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one user after duplicate signup, got %d", count)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	newTestDB(t)

	if rr := postForm(SignupHandler, "/signup", signupForm("a@x.com", "alice", "pw123")); rr.Code != http.StatusFound {
		t.Fatalf("signup: got %d", rr.Code)
	}

	for _, form := range []url.Values{
		{"email": {"a@x.com"}, "password": {"wrong"}},
		{"email": {"nobody@x.com"}, "password": {"pw123"}},
	} {
		rr := postForm(LoginHandler, "/login", form)
		if rr.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/login" {
			t.Fatalf("expected redirect back to /login, got %q", loc)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	db := newTestDB(t)

	if rr := postForm(SignupHandler, "/signup", signupForm("a@x.com", "alice", "pw123")); rr.Code != http.StatusFound {
		t.Fatalf("signup: got %d", rr.Code)
	}

	rr := postForm(LoginHandler, "/login", url.Values{"email": {"a@x.com"}, "password": {"pw123"}})
	if rr.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}

	var user models.User
	if err := db.Where("email = ?", "a@x.com").First(&user).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	check := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range rr.Result().Cookies() {
		check.AddCookie(c)
	}
	if uid, ok := utils.SessionUserID(check); !ok || uid != user.ID {
		t.Fatalf("expected session for user %d, got %d (ok=%v)", user.ID, uid, ok)
	}
}

func TestLogout_IsIdempotent(t *testing.T) {
	newTestDB(t)

	// Without a session: same end state, same redirect.
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rr := httptest.NewRecorder()
	LogoutHandler(rr, req)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
		t.Fatalf("expected 302 to /, got %d to %q", rr.Code, rr.Header().Get("Location"))
	}

	// With a session: identity must be gone afterwards.
	signup := postForm(SignupHandler, "/signup", signupForm("a@x.com", "alice", "pw123"))
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	for _, c := range signup.Result().Cookies() {
		req.AddCookie(c)
	}
	rr = httptest.NewRecorder()
	LogoutHandler(rr, req)
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
		t.Fatalf("expected 302 to /, got %d to %q", rr.Code, rr.Header().Get("Location"))
	}

	check := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		check.AddCookie(c)
	}
	if _, ok := utils.SessionUserID(check); ok {
		t.Fatal("expected no session identity after logout")
	}
}
