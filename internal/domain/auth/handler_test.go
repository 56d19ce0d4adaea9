package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func postLogin(t *testing.T, h *Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestLoginHandler_MissingFields(t *testing.T) {
	h := NewHandler(NewService(&mockFinder{}))

	rec := postLogin(t, h, `{"email":"asha@example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "Email and password required" {
		t.Errorf("unexpected error message: %q", body["error"])
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	h := NewHandler(NewService(&mockFinder{id: uuid.New(), email: "asha@example.com", passcode: "om123"}))

	rec := postLogin(t, h, `{"email":"asha@example.com","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLoginHandler_Success(t *testing.T) {
	id := uuid.New()
	h := NewHandler(NewService(&mockFinder{id: id, email: "asha@example.com", passcode: "om123"}))

	rec := postLogin(t, h, `{"email":"asha@example.com","password":"om123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	var body struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != "Login successful" {
		t.Errorf("unexpected message: %q", body.Message)
	}
	if body.User.ID != id || body.User.Email != "asha@example.com" {
		t.Errorf("unexpected user payload: %+v", body.User)
	}
}
