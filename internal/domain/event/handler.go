package event

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hra/hra/internal/platform/auth"
	"github.com/hra/hra/internal/platform/httperr"
	"github.com/hra/hra/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Event reads are public.
	api.GET("/events", h.ListEvents)
	api.GET("/events/:id", h.GetEvent)

	admin := api.Group("", auth.RequireAdmin())
	admin.POST("/events", h.CreateEvent)
	admin.PUT("/events/:id", h.UpdateEvent)
	admin.DELETE("/events/:id", h.DeleteEvent)

	admin.GET("/hospital-events", h.ListLinks)
	admin.GET("/hospital-events/:id", h.GetLink)
	admin.POST("/hospital-events", h.CreateLink)
	admin.PUT("/hospital-events/:id", h.UpdateLink)
	admin.DELETE("/hospital-events/:id", h.DeleteLink)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// -- Events --

func (h *Handler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result, err := h.svc.CreateEvent(c.Request().Context(), &req)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *Handler) GetEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ev, err := h.svc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *Handler) UpdateEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var ev EmergencyEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ev.ID = id
	if err := h.svc.UpdateEvent(c.Request().Context(), &ev); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *Handler) DeleteEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteEvent(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListEvents(c echo.Context) error {
	pg := pagination.FromContext(c)
	events, total, err := h.svc.ListEvents(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(events, total, pg.Limit, pg.Offset))
}

// -- Participation links --

func (h *Handler) CreateLink(c echo.Context) error {
	var he HospitalEvent
	if err := c.Bind(&he); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateLink(c.Request().Context(), &he); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, he)
}

func (h *Handler) GetLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	he, err := h.svc.GetLink(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, he)
}

func (h *Handler) UpdateLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var he HospitalEvent
	if err := c.Bind(&he); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	he.ID = id
	if err := h.svc.UpdateLink(c.Request().Context(), &he); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, he)
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
