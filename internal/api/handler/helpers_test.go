package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hrdesk/backend/internal/ai"
	"hrdesk/backend/internal/api/handler"
	"hrdesk/backend/internal/auth"
	"hrdesk/backend/internal/models"
	"hrdesk/backend/internal/storage"
)

// newTestRouter wires the handler onto a quiet gin engine backed by the
// in-memory store.
func newTestRouter(annotator ai.Annotator) (*gin.Engine, *storage.Memory) {
	gin.SetMode(gin.TestMode)
	store := storage.NewMemory()
	h := handler.NewHandler(store, annotator, []byte("test-secret"))
	r := gin.New()
	h.RegisterRoutes(r)
	return r, store
}

// doJSON performs one request against the router and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into out.
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// seedUser stores an active user with a hashed password and returns it.
func seedUser(t *testing.T, store *storage.Memory, phone, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Username: "u-" + phone,
		Password: hash,
		Email:    phone + "@example.com",
		Phone:    phone,
		Name:     "Test User",
		IsActive: true,
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}
