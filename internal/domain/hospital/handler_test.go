package hospital

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hra/hra/internal/platform/auth"
	"github.com/hra/hra/pkg/respond"
)

func newTestHandler() (*Handler, *mockRepo, *echo.Echo) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo))
	return h, repo, echo.New()
}

func asIdentity(c echo.Context, ident auth.Identity) {
	c.SetRequest(c.Request().WithContext(auth.WithIdentity(c.Request().Context(), ident)))
}

var cityIdent = auth.Identity{UserID: "city", Role: auth.RoleCityAdmin, Authenticated: true}

func TestHandler_CreateDistrict(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/districts", strings.NewReader(`{"name":"East"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asIdentity(c, cityIdent)

	if err := h.CreateDistrict(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var d District
	json.Unmarshal(rec.Body.Bytes(), &d)
	if d.Name != "East" || d.ID == 0 {
		t.Errorf("unexpected district: %+v", d)
	}
}

func TestHandler_GetHospital_NotFound(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.GetHospital(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_GetHospital_BadID(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.GetHospital(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestHandler_CreateDepartmentLink_Conflict(t *testing.T) {
	h, repo, e := newTestHandler()
	repo.CreateDepartmentLink(nil, &HospitalDepartment{HospitalID: 1, DeptID: 2})

	body := `{"hospital_id":1,"dept_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hospital-departments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	asIdentity(c, cityIdent)

	err := h.CreateDepartmentLink(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate placement, got %v", err)
	}
}

func TestHandler_DepartmentDetail_MissingParam(t *testing.T) {
	h, _, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.HospitalDepartmentDetail(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing dept_id, got %v", err)
	}
}

func TestHandler_HospitalScores_Envelope(t *testing.T) {
	h, repo, e := newTestHandler()
	hosp := &Hospital{Name: "General", DistrictID: 1, LevelID: 1}
	repo.CreateHospital(nil, hosp)
	repo.CreateScore(nil, &HospitalServiceScore{HospitalID: hosp.ID})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.HospitalScores(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var env respond.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if env.Code != 0 || env.Message != "success" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, _, e := newTestHandler()
	api := e.Group("/api/v1")
	h.RegisterRoutes(api)

	routePaths := make(map[string]bool)
	for _, r := range e.Routes() {
		routePaths[r.Method+":"+r.Path] = true
	}

	expected := []string{
		"GET:/api/v1/districts",
		"POST:/api/v1/districts",
		"GET:/api/v1/hospitals",
		"PUT:/api/v1/hospitals/:id",
		"GET:/api/v1/hospitals/:id/departments",
		"GET:/api/v1/hospitals/:id/department-detail",
		"POST:/api/v1/scores",
		"GET:/api/v1/hospital-departments",
	}
	for _, p := range expected {
		if !routePaths[p] {
			t.Errorf("missing expected route: %s", p)
		}
	}
}
