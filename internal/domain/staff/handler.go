package staff

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
	admin := api.Group("", auth.RequireAdmin())
	admin.GET("/staff", h.ListStaff)
	admin.GET("/staff/statistics", h.Statistics)
	admin.GET("/staff/:id", h.GetStaff)
	admin.POST("/staff", h.CreateStaff)
	admin.PUT("/staff/:id", h.UpdateStaff)
	admin.DELETE("/staff/:id", h.DeleteStaff)

	admin.GET("/hospital-staff", h.ListLinks)
	admin.GET("/hospital-staff/:id", h.GetLink)
	admin.POST("/hospital-staff", h.CreateLink)
	admin.POST("/hospital-staff/onboard", h.Onboard)
	admin.PUT("/hospital-staff/:id", h.UpdateLink)
	admin.DELETE("/hospital-staff/:id", h.DeleteLink)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// -- Staff --

func (h *Handler) CreateStaff(c echo.Context) error {
	var st Staff
	if err := c.Bind(&st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateStaff(c.Request().Context(), &st); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, st)
}

func (h *Handler) GetStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	st, err := h.svc.GetStaff(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) UpdateStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var st Staff
	if err := c.Bind(&st); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	st.ID = id
	if err := h.svc.UpdateStaff(c.Request().Context(), &st); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *Handler) DeleteStaff(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteStaff(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListStaff(c echo.Context) error {
	pg := pagination.FromContext(c)
	staff, total, err := h.svc.ListStaff(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(staff, total, pg.Limit, pg.Offset))
}

func (h *Handler) Statistics(c echo.Context) error {
	stats, err := h.svc.Statistics(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, stats)
}

// -- Employment links --

func (h *Handler) CreateLink(c echo.Context) error {
	var hs HospitalStaff
	if err := c.Bind(&hs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateLink(c.Request().Context(), &hs); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, hs)
}

func (h *Handler) GetLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	hs, err := h.svc.GetLink(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, hs)
}

func (h *Handler) UpdateLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var hs HospitalStaff
	if err := c.Bind(&hs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hs.ID = id
	if err := h.svc.UpdateLink(c.Request().Context(), &hs); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, hs)
}

func (h *Handler) DeleteLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteLink(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListLinks(c echo.Context) error {
	pg := pagination.FromContext(c)
	links, total, err := h.svc.ListLinks(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(links, total, pg.Limit, pg.Offset))
}

// -- Onboarding --

func (h *Handler) Onboard(c echo.Context) error {
	var req OnboardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.Onboard(c.Request().Context(), &req)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, result)
}
