package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Moetaz101/project-pal/internal/utils"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"member_id": GetMemberID(c),
			"name":      GetMemberName(c),
			"role":      GetRole(c),
		})
	})
	return r
}

func TestAuthRequired_ValidToken(t *testing.T) {
	token, err := utils.GenerateToken("m-1", "Ada", "developer", 1)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	r := newAuthRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}
}

func TestAuthRequired_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "sometoken"},
		{"wrong scheme", "Basic sometoken"},
		{"garbage token", "Bearer not-a-token"},
	}

	r := newAuthRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestGetMemberID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := GetMemberID(c); got != "" {
		t.Errorf("GetMemberID() = %q, want empty when unset", got)
	}
}
