package hospital

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hra/hra/internal/platform/auth"
	"github.com/hra/hra/internal/platform/httperr"
	"github.com/hra/hra/pkg/pagination"
	"github.com/hra/hra/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Reference data is readable by anyone.
	api.GET("/districts", h.ListDistricts)
	api.GET("/districts/:id", h.GetDistrict)
	api.GET("/hospital-levels", h.ListLevels)
	api.GET("/hospital-levels/:id", h.GetLevel)
	api.GET("/hospitals", h.ListHospitals)
	api.GET("/hospitals/:id", h.GetHospital)
	api.GET("/hospitals/:id/departments", h.HospitalDepartments)
	api.GET("/hospitals/:id/scores", h.HospitalScores)
	api.GET("/hospitals/:id/events", h.HospitalEvents)
	api.GET("/hospitals/:id/department-detail", h.HospitalDepartmentDetail)
	api.GET("/scores", h.ListScores)
	api.GET("/scores/:id", h.GetScore)

	city := api.Group("", auth.RequireRole(auth.RoleCityAdmin))
	city.POST("/districts", h.CreateDistrict)
	city.PUT("/districts/:id", h.UpdateDistrict)
	city.DELETE("/districts/:id", h.DeleteDistrict)
	city.POST("/hospital-levels", h.CreateLevel)
	city.PUT("/hospital-levels/:id", h.UpdateLevel)
	city.DELETE("/hospital-levels/:id", h.DeleteLevel)
	city.POST("/hospitals", h.CreateHospital)
	city.DELETE("/hospitals/:id", h.DeleteHospital)

	admin := api.Group("", auth.RequireAdmin())
	admin.PUT("/hospitals/:id", h.UpdateHospital)
	admin.GET("/hospital-departments", h.ListDepartmentLinks)
	admin.GET("/hospital-departments/:id", h.GetDepartmentLink)
	admin.POST("/hospital-departments", h.CreateDepartmentLink)
	admin.PUT("/hospital-departments/:id", h.UpdateDepartmentLink)
	admin.DELETE("/hospital-departments/:id", h.DeleteDepartmentLink)
	admin.POST("/scores", h.CreateScore)
	admin.PUT("/scores/:id", h.UpdateScore)
	admin.DELETE("/scores/:id", h.DeleteScore)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// -- Districts --

func (h *Handler) CreateDistrict(c echo.Context) error {
	var d District
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDistrict(c.Request().Context(), &d); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) GetDistrict(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	d, err := h.svc.GetDistrict(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) UpdateDistrict(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var d District
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = id
	if err := h.svc.UpdateDistrict(c.Request().Context(), &d); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDistrict(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteDistrict(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListDistricts(c echo.Context) error {
	pg := pagination.FromContext(c)
	districts, total, err := h.svc.ListDistricts(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(districts, total, pg.Limit, pg.Offset))
}

// -- Levels --

func (h *Handler) CreateLevel(c echo.Context) error {
	var l HospitalLevel
	if err := c.Bind(&l); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateLevel(c.Request().Context(), &l); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *Handler) GetLevel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	l, err := h.svc.GetLevel(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) UpdateLevel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var l HospitalLevel
	if err := c.Bind(&l); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	l.ID = id
	if err := h.svc.UpdateLevel(c.Request().Context(), &l); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *Handler) DeleteLevel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteLevel(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListLevels(c echo.Context) error {
	pg := pagination.FromContext(c)
	levels, total, err := h.svc.ListLevels(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(levels, total, pg.Limit, pg.Offset))
}

// -- Hospitals --

func (h *Handler) CreateHospital(c echo.Context) error {
	var hosp Hospital
	if err := c.Bind(&hosp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateHospital(c.Request().Context(), &hosp); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, hosp)
}

func (h *Handler) GetHospital(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	hosp, err := h.svc.GetHospital(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, hosp)
}

func (h *Handler) UpdateHospital(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var hosp Hospital
	if err := c.Bind(&hosp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hosp.ID = id
	if err := h.svc.UpdateHospital(c.Request().Context(), &hosp); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, hosp)
}

func (h *Handler) DeleteHospital(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteHospital(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListHospitals(c echo.Context) error {
	pg := pagination.FromContext(c)
	hospitals, total, err := h.svc.ListHospitals(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(hospitals, total, pg.Limit, pg.Offset))
}

// -- Per-hospital sub-resources --

func (h *Handler) HospitalDepartments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	depts, err := h.svc.DepartmentsOfHospital(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return respond.OK(c, depts)
}

func (h *Handler) HospitalScores(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	scores, err := h.svc.ScoresOfHospital(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return respond.OK(c, scores)
}

func (h *Handler) HospitalEvents(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	events, err := h.svc.EventsOfHospital(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return respond.OK(c, events)
}

func (h *Handler) HospitalDepartmentDetail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deptID, err := strconv.ParseInt(c.QueryParam("dept_id"), 10, 64)
	if err != nil || deptID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "dept_id query parameter is required")
	}
	detail, err := h.svc.DepartmentDetail(c.Request().Context(), id, deptID)
	if err != nil {
		return httperr.Map(err)
	}
	return respond.OK(c, detail)
}

// -- Department placements --

func (h *Handler) CreateDepartmentLink(c echo.Context) error {
	var hd HospitalDepartment
	if err := c.Bind(&hd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDepartmentLink(c.Request().Context(), &hd); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, hd)
}

func (h *Handler) GetDepartmentLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	hd, err := h.svc.GetDepartmentLink(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, hd)
}

func (h *Handler) UpdateDepartmentLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var hd HospitalDepartment
	if err := c.Bind(&hd); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hd.ID = id
	if err := h.svc.UpdateDepartmentLink(c.Request().Context(), &hd); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, hd)
}

func (h *Handler) DeleteDepartmentLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteDepartmentLink(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListDepartmentLinks(c echo.Context) error {
	pg := pagination.FromContext(c)
	links, total, err := h.svc.ListDepartmentLinks(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(links, total, pg.Limit, pg.Offset))
}

// -- Service scores --

func (h *Handler) CreateScore(c echo.Context) error {
	var sc HospitalServiceScore
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateScore(c.Request().Context(), &sc); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, sc)
}

func (h *Handler) GetScore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sc, err := h.svc.GetScore(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, sc)
}

func (h *Handler) UpdateScore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var sc HospitalServiceScore
	if err := c.Bind(&sc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	sc.ID = id
	if err := h.svc.UpdateScore(c.Request().Context(), &sc); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, sc)
}

func (h *Handler) DeleteScore(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteScore(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListScores(c echo.Context) error {
	pg := pagination.FromContext(c)
	scores, total, err := h.svc.ListScores(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(scores, total, pg.Limit, pg.Offset))
}
