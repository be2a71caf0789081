package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestOK(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := OK(c, map[string]int{"total": 3}); err != nil {
		t.Fatalf("OK returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if env.Code != 0 {
		t.Errorf("expected code 0, got %d", env.Code)
	}
	if env.Message != "success" {
		t.Errorf("expected message %q, got %q", "success", env.Message)
	}
	if env.Data == nil {
		t.Error("expected data to be present")
	}
}

func TestError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Error(c, http.StatusForbidden, "not allowed"); err != nil {
		t.Fatalf("Error returned error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", rec.Code)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if env.Code != http.StatusForbidden {
		t.Errorf("expected code 403, got %d", env.Code)
	}
	if env.Data != nil {
		t.Error("expected data to be omitted on error")
	}
}
