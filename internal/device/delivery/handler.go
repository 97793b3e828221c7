package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worship-backend/internal/apperr"
	"worship-backend/internal/device/usecase"
)

// DeviceHandler exposes the device registry over HTTP.
type DeviceHandler struct {
	deviceUsecase usecase.DeviceUsecase
}

// NewDeviceHandler creates a new DeviceHandler
func NewDeviceHandler(deviceUsecase usecase.DeviceUsecase) *DeviceHandler {
	return &DeviceHandler{
		deviceUsecase: deviceUsecase,
	}
}

type registerDeviceRequest struct {
	Token       string          `json:"token"`
	Role        string          `json:"role"`
	Preferences map[string]bool `json:"preferences"`
	Platform    string          `json:"platform"`
}

// RegisterDevice handles POST /api/devices
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	device, err := h.deviceUsecase.Register(usecase.RegisterInput{
		Token:       req.Token,
		UserID:      c.GetString("userID"),
		Role:        req.Role,
		Preferences: req.Preferences,
		Platform:    req.Platform,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, device)
}

type unregisterDeviceRequest struct {
	Token string `json:"token"`
}

// UnregisterDevice handles DELETE /api/devices. The token travels in the
// body, not the path, so access logs never see it.
func (h *DeviceHandler) UnregisterDevice(c *gin.Context) {
	var req unregisterDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.deviceUsecase.Unregister(req.Token); err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "device unregistered"})
}

type updatePreferencesRequest struct {
	Token       string          `json:"token"`
	Preferences map[string]bool `json:"preferences"`
	Enabled     *bool           `json:"enabled"`
}

// UpdatePreferences handles PATCH /api/devices/preferences
func (h *DeviceHandler) UpdatePreferences(c *gin.Context) {
	var req updatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	device, err := h.deviceUsecase.UpdatePreferences(usecase.UpdatePreferencesInput{
		Token:       req.Token,
		Preferences: req.Preferences,
		Enabled:     req.Enabled,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, device)
}
