package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourbooking/entity"
	"tourbooking/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const secret = "mw-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": utils.CurrentUserID(c), "role": utils.CurrentRole(c)})
	}
	r.GET("/any", AuthMiddleware(secret), ok)
	r.GET("/admin", AuthMiddleware(secret, "admin"), ok)
	r.GET("/ws", WSAuthMiddleware(secret), RequireRole("admin"), ok)
	return r
}

func token(t *testing.T, id uint, role string) string {
	t.Helper()
	tok, err := utils.GenerateToken(id, role, secret, time.Hour)
	require.NoError(t, err)
	return tok
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	userTok := token(t, 3, "user")
	adminTok := token(t, 1, "admin")

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/any", "", http.StatusUnauthorized},
		{"not bearer", "/any", "Token " + userTok, http.StatusUnauthorized},
		{"bad token", "/any", "Bearer nope", http.StatusUnauthorized},
		{"user ok", "/any", "Bearer " + userTok, http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + userTok, http.StatusForbidden},
		{"admin ok", "/admin", "Bearer " + adminTok, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestWSAuthMiddleware(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing token", "/ws", http.StatusUnauthorized},
		{"invalid token", "/ws?token=bad", http.StatusUnauthorized},
		{"user token", "/ws?token=" + token(t, 3, "user"), http.StatusForbidden},
		{"admin token", "/ws?token=" + token(t, 1, "admin"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://app.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

type fakeUsers map[uint]*entity.User

func (f fakeUsers) FindByID(id uint) (*entity.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestCurrentUser_UsesLiveAccount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	users := fakeUsers{
		1: {Email: "demoted@example.com", IsAdmin: false},
		2: {Email: "promoted@example.com", IsAdmin: true},
	}
	r := gin.New()
	r.GET("/admin", AuthMiddleware(secret), CurrentUser(users), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"admin token for demoted account", token(t, 1, "admin"), http.StatusForbidden},
		{"user token for promoted account", token(t, 2, "user"), http.StatusOK},
		{"deleted account", token(t, 3, "admin"), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
