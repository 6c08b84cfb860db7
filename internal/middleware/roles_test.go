package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func roleRouter(role string, required ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected",
		func(c *gin.Context) { c.Set(ContextUserRole, role) },
		RequireRoles(required...),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) },
	)
	return r
}

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name     string
		role     string
		required []string
		want     int
	}{
		{"allowed role", "admin", []string{"admin"}, http.StatusOK},
		{"one of several", "receptionist", []string{"admin", "receptionist"}, http.StatusOK},
		{"wrong role", "veterinarian", []string{"admin"}, http.StatusForbidden},
		{"no role set", "", []string{"admin"}, http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)

			roleRouter(tc.role, tc.required...).ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
