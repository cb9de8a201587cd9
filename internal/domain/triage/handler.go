package triage

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/triageq/triageq/pkg/pagination"
)

// Handler exposes the triage operations over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients", h.CreateTriage)
	api.GET("/patients", h.ListQueue)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id/status", h.UpdateStatus)
}

func (h *Handler) CreateTriage(c echo.Context) error {
	var req IntakeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.CreateTriage(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) ListQueue(c echo.Context) error {
	pg := pagination.FromContext(c)
	records := h.svc.ListQueue(c.Request().Context())
	total := len(records)

	start := pg.Offset
	if start > total {
		start = total
	}
	end := start + pg.Limit
	if end > total {
		end = total
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(records[start:end], total, pg.Limit, pg.Offset))
}

func (h *Handler) GetPatient(c echo.Context) error {
	rec, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// statusUpdateRequest is the body of PUT /patients/:id/status.
type statusUpdateRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

// writeError maps the core error taxonomy onto HTTP responses.
func writeError(c echo.Context, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	}
	var te *InvalidTransitionError
	if errors.As(err, &te) {
		return c.JSON(http.StatusConflict, map[string]interface{}{
			"error":     te.Error(),
			"current":   te.From,
			"requested": te.To,
		})
	}
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "patient not found"})
	}
	// Duplicate identifiers indicate an upstream generator bug; everything
	// else unexpected is reported the same way.
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
