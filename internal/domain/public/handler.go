package public

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hra/hra/pkg/pagination"
	"github.com/hra/hra/pkg/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the unauthenticated directory endpoint.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/public/search", h.Search)
}

func (h *Handler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pg := pagination.FromContext(c)
	hospitals, total, err := h.svc.Search(c.Request().Context(), &req, pg.Limit, pg.Offset)
	if err != nil {
		return respond.Error(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, pagination.NewResponse(hospitals, total, pg.Limit, pg.Offset))
}
