package department

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
	api.GET("/departments", h.List)
	api.GET("/departments/:id", h.Get)
	api.GET("/department-resources", h.ListResources)
	api.GET("/department-resources/:id", h.GetResource)

	city := api.Group("", auth.RequireRole(auth.RoleCityAdmin))
	city.POST("/departments", h.Create)
	city.PUT("/departments/:id", h.Update)
	city.DELETE("/departments/:id", h.Delete)

	admin := api.Group("", auth.RequireAdmin())
	admin.POST("/department-resources", h.CreateResource)
	admin.PUT("/department-resources/:id", h.UpdateResource)
	admin.DELETE("/department-resources/:id", h.DeleteResource)
	admin.GET("/department-staff", h.ListStaffLinks)
	admin.GET("/department-staff/:id", h.GetStaffLink)
	admin.POST("/department-staff", h.CreateStaffLink)
	admin.PUT("/department-staff/:id", h.UpdateStaffLink)
	admin.DELETE("/department-staff/:id", h.DeleteStaffLink)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// -- Departments --

func (h *Handler) Create(c echo.Context) error {
	var d Department
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &d); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var d Department
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = id
	if err := h.svc.Update(c.Request().Context(), &d); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	depts, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(depts, total, pg.Limit, pg.Offset))
}

// -- Resources --

func (h *Handler) CreateResource(c echo.Context) error {
	var r DepartmentResource
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateResource(c.Request().Context(), &r); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) GetResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	r, err := h.svc.GetResource(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) UpdateResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var r DepartmentResource
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r.ID = id
	if err := h.svc.UpdateResource(c.Request().Context(), &r); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) DeleteResource(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteResource(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListResources(c echo.Context) error {
	pg := pagination.FromContext(c)
	resources, total, err := h.svc.ListResources(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(resources, total, pg.Limit, pg.Offset))
}

// -- Staff assignments --

func (h *Handler) CreateStaffLink(c echo.Context) error {
	var ds DepartmentStaff
	if err := c.Bind(&ds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateStaffLink(c.Request().Context(), &ds); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, ds)
}

func (h *Handler) GetStaffLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ds, err := h.svc.GetStaffLink(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, ds)
}

func (h *Handler) UpdateStaffLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var ds DepartmentStaff
	if err := c.Bind(&ds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ds.ID = id
	if err := h.svc.UpdateStaffLink(c.Request().Context(), &ds); err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, ds)
}

func (h *Handler) DeleteStaffLink(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteStaffLink(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListStaffLinks(c echo.Context) error {
	pg := pagination.FromContext(c)
	links, total, err := h.svc.ListStaffLinks(c.Request().Context(), c.QueryParam("dept_id"), pg.Limit, pg.Offset)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(links, total, pg.Limit, pg.Offset))
}
