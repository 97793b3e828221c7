package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worship-backend/internal/apperr"
	"worship-backend/internal/reminder/usecase"
)

// ReminderHandler exposes the cron-triggered reminder jobs. The routes are
// guarded by the cron secret middleware, not user auth.
type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
	}
}

// MonthlyScheduleReminder handles POST /api/cron/monthly-schedule-reminder
func (h *ReminderHandler) MonthlyScheduleReminder(c *gin.Context) {
	summary, err := h.reminderUsecase.RunMonthlyScheduleReminder(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RepertoireReminder handles POST /api/cron/repertoire-reminder
func (h *ReminderHandler) RepertoireReminder(c *gin.Context) {
	summary, err := h.reminderUsecase.RunRepertoireReminder(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// UpcomingServiceReminder handles POST /api/cron/upcoming-service-reminder
func (h *ReminderHandler) UpcomingServiceReminder(c *gin.Context) {
	summary, err := h.reminderUsecase.RunUpcomingServiceReminder(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
