package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "worship-backend/internal/auth/delivery"
	deviceDelivery "worship-backend/internal/device/delivery"
	notifyDelivery "worship-backend/internal/notify/delivery"
	reminderDelivery "worship-backend/internal/reminder/delivery"
	userdomain "worship-backend/internal/user/domain"
	"worship-backend/pkg/config"
)

// SetupRoutes wires the HTTP surface. Device lifecycle is open to any
// authenticated caller, event emission to managers, direct sends to admins,
// and the cron triggers to the shared-secret holder.
func SetupRoutes(r *gin.Engine, cfg *config.Config, deviceHandler *deviceDelivery.DeviceHandler, notifyHandler *notifyDelivery.NotifyHandler, reminderHandler *reminderDelivery.ReminderHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Device routes (protected)
		devices := api.Group("/devices")
		devices.Use(authDelivery.AuthMiddleware(cfg.JWTSecret))
		{
			devices.POST("", deviceHandler.RegisterDevice)
			devices.DELETE("", deviceHandler.UnregisterDevice)
			devices.PATCH("/preferences", deviceHandler.UpdatePreferences)
		}

		// Notification routes (protected, tiered)
		notifications := api.Group("/notifications")
		notifications.Use(authDelivery.AuthMiddleware(cfg.JWTSecret))
		{
			notifications.POST("/events", authDelivery.RequireRole(userdomain.RoleManager), notifyHandler.EmitEvent)
			notifications.POST("/send", authDelivery.RequireRole(userdomain.RoleAdmin), notifyHandler.AdminSend)
		}

		// Cron trigger routes (shared secret)
		cron := api.Group("/cron")
		cron.Use(authDelivery.CronSecretMiddleware(cfg.CronSecret))
		{
			cron.POST("/monthly-schedule-reminder", reminderHandler.MonthlyScheduleReminder)
			cron.POST("/repertoire-reminder", reminderHandler.RepertoireReminder)
			cron.POST("/upcoming-service-reminder", reminderHandler.UpcomingServiceReminder)
		}
	}
}
