package handler

import (
	"log/slog"
	"net/http"

	"locgate/internal/delivery/api/response"
	"locgate/internal/domain/entity"
	"locgate/internal/domain/service"
	"locgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WaitlistHandlerParams holds dependencies for WaitlistHandler, injected by Fx.
type WaitlistHandlerParams struct {
	fx.In

	WaitlistUC usecase.WaitlistUsecase
	Logger     *slog.Logger
}

// WaitlistHandler accepts "notify me" requests from outside every zone.
type WaitlistHandler struct {
	waitlistUC usecase.WaitlistUsecase
	logger     *slog.Logger
}

// NewWaitlistHandler is the constructor for WaitlistHandler
func NewWaitlistHandler(params WaitlistHandlerParams) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistUC: params.WaitlistUC,
		logger:     params.Logger,
	}
}

// JoinWaitlistRequest represents the request body for joining the waitlist
type JoinWaitlistRequest struct {
	CoordinatesRequest
	DeviceID string `json:"device_id,omitempty" validate:"omitempty,max=128"`
	UserID   string `json:"user_id,omitempty" validate:"omitempty,uuid"`
	FCMToken string `json:"fcm_token,omitempty" validate:"omitempty,max=4096"`
	Contact  string `json:"contact,omitempty" validate:"omitempty,max=256"`
}

// Join handles POST /api/v1/waitlist
func (h *WaitlistHandler) Join(c echo.Context) error {
	var req JoinWaitlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid waitlist input")
	}
	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	availability := &service.AvailabilityRequest{
		Coordinates: req.coordinates(),
		Identity:    entity.Identity{DeviceID: req.DeviceID},
		PushToken:   req.FCMToken,
		Contact:     req.Contact,
	}
	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
		}
		availability.Identity.UserID = &userID
	}

	receipt, err := h.waitlistUC.Join(c.Request().Context(), availability)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, receipt)
}
