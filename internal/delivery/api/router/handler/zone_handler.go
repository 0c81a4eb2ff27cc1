package handler

import (
	"log/slog"
	"net/http"

	"locgate/internal/delivery/api/response"
	"locgate/internal/delivery/api/validator"
	"locgate/internal/domain/entity"
	"locgate/internal/errors"
	"locgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ZoneHandlerParams holds dependencies for ZoneHandler, injected by Fx.
type ZoneHandlerParams struct {
	fx.In

	ZoneUC usecase.ZoneUsecase
	Logger *slog.Logger
}

// ZoneHandler serves zone detection and the zone catalogue.
type ZoneHandler struct {
	zoneUC usecase.ZoneUsecase
	logger *slog.Logger
}

// NewZoneHandler is the constructor for ZoneHandler
func NewZoneHandler(params ZoneHandlerParams) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: params.ZoneUC,
		logger: params.Logger,
	}
}

// CoordinatesRequest is a WGS84 point. Pointers tell a missing field from zero.
type CoordinatesRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

func (r *CoordinatesRequest) coordinates() entity.Coordinates {
	return entity.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// CoordinatesResponse is one boundary vertex.
type CoordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ZoneResponse is a zone with its full boundary.
type ZoneResponse struct {
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Region   string                `json:"region,omitempty"`
	Boundary []CoordinatesResponse `json:"boundary"`
}

// DetectResponse answers a detection request.
type DetectResponse struct {
	InZone bool          `json:"in_zone"`
	Zone   *ZoneResponse `json:"zone,omitempty"`
}

func newZoneResponse(zone *entity.DeliveryZone) *ZoneResponse {
	boundary := make([]CoordinatesResponse, 0, len(zone.Boundary))
	for _, c := range zone.Boundary {
		boundary = append(boundary, CoordinatesResponse(c))
	}

	return &ZoneResponse{
		ID:       zone.ID.String(),
		Name:     zone.Name,
		Region:   zone.Region,
		Boundary: boundary,
	}
}

// Detect handles POST /api/v1/zones/detect
func (h *ZoneHandler) Detect(c echo.Context) error {
	var req CoordinatesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coordinates input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	result, err := h.zoneUC.Detect(c.Request().Context(), req.coordinates())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := DetectResponse{InZone: result.InZone}
	if result.InZone && result.Zone != nil {
		resp.Zone = newZoneResponse(result.Zone)
	}

	return response.Success(c, http.StatusOK, resp)
}

// List handles GET /api/v1/zones
func (h *ZoneHandler) List(c echo.Context) error {
	zones, err := h.zoneUC.ListZones(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, zones)
}

// Reload handles POST /api/v1/zones/reload
func (h *ZoneHandler) Reload(c echo.Context) error {
	count, err := h.zoneUC.Reload(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.InfoContext(c.Request().Context(), "Zones reloaded over HTTP", slog.Int("zones", count))

	return response.Success(c, http.StatusOK, map[string]int{"zones": count})
}

func validationError(c echo.Context, err error) error {
	var fieldErrs validator.FieldErrors
	if errors.As(err, &fieldErrs) {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Request validation failed", fieldErrs.Details())
	}

	return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
}
