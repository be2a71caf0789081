package statistics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hra/hra/internal/platform/auth"
	"github.com/hra/hra/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	city := api.Group("", auth.RequireRole(auth.RoleCityAdmin))
	city.GET("/statistics/dashboard", h.Dashboard)
	city.GET("/statistics/hospital-rank", h.HospitalRank)
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, d)
}

func (h *Handler) HospitalRank(c echo.Context) error {
	var f RankFilter
	if v := c.QueryParam("district_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "district_id must be an integer")
		}
		f.DistrictID = &id
	}
	if v := c.QueryParam("level_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "level_id must be an integer")
		}
		f.LevelID = &id
	}
	ranks, err := h.svc.HospitalRank(c.Request().Context(), f)
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, ranks)
}
