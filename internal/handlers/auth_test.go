package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Moetaz101/project-pal/internal/config"
	"github.com/Moetaz101/project-pal/internal/models"
	"github.com/Moetaz101/project-pal/internal/services"
	"github.com/Moetaz101/project-pal/internal/store"
	"github.com/Moetaz101/project-pal/internal/utils"
	"github.com/Moetaz101/project-pal/pkg/response"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret")
}

func newAuthFixture() (*store.Store, *services.Session, *gin.Engine) {
	st := store.New(store.Snapshot{})
	st.AddMember(models.Member{ID: "m-1", Name: "Ada", Email: "ada@x.com", Role: models.RoleDeveloper})

	session := services.NewSession()
	members := services.NewMemberService(st)
	h := NewAuthHandler(members, session, &config.JWTConfig{Secret: "test-secret", ExpireHour: 24})

	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	return st, session, r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_SelectsMember(t *testing.T) {
	_, session, r := newAuthFixture()

	w := postJSON(r, "/api/auth/login", gin.H{"member_id": "m-1"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	token, _ := data["token"].(string)
	if token == "" {
		t.Error("response should carry a token")
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.MemberID != "m-1" || claims.Name != "Ada" {
		t.Errorf("claims = %+v, want m-1/Ada", claims)
	}

	if got := session.CurrentUser(); got == nil || got.ID != "m-1" {
		t.Errorf("session current user = %+v, want m-1", got)
	}
}

func TestLogin_UnknownMember(t *testing.T) {
	_, session, r := newAuthFixture()

	w := postJSON(r, "/api/auth/login", gin.H{"member_id": "ghost"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if session.IsAuthenticated() {
		t.Error("failed login should not set the current user")
	}
}

func TestLogin_MissingMemberID(t *testing.T) {
	_, _, r := newAuthFixture()

	w := postJSON(r, "/api/auth/login", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	_, session, r := newAuthFixture()

	postJSON(r, "/api/auth/login", gin.H{"member_id": "m-1"})
	if !session.IsAuthenticated() {
		t.Fatal("precondition: login should authenticate")
	}

	w := postJSON(r, "/api/auth/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if session.IsAuthenticated() {
		t.Error("logout should clear the current user")
	}
}
