package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wwa-backend/config"
	"wwa-backend/models"
	"wwa-backend/seed"
	"wwa-backend/utils"
)

// setupTest wires the router to a fresh seeded in-memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("SECRET_KEY", "test-secret-key")
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("SEED_ADMIN_PASSWORD", "test_pass")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Park{},
		&models.Booking{},
		&models.Message{},
		&models.ReminderLog{},
	))
	config.DB = db

	_, err = seed.Run(db)
	require.NoError(t, err)

	return SetupRouter()
}

func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerUser creates a customer account and returns its session cookie.
func registerUser(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	form := url.Values{
		"name":      {"Test"},
		"last_name": {"User"},
		"email":     {"test@example.com"},
		"password":  {"password123"},
	}
	w := postForm(r, "/register", form)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/profile", w.Result().Header.Get("Location"))

	for _, ck := range w.Result().Cookies() {
		if ck.Name == utils.TokenCookie && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("register did not set the token cookie")
	return nil
}

func firstPark(t *testing.T) models.Park {
	t.Helper()
	var park models.Park
	require.NoError(t, config.DB.Order("id").First(&park).Error)
	return park
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, config.DB.Model(model).Count(&n).Error)
	return n
}
