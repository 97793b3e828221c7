package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worship-backend/internal/apperr"
	"worship-backend/internal/notify/domain"
	"worship-backend/internal/notify/usecase"
)

// NotifyHandler exposes event emission and administrative broadcasts.
type NotifyHandler struct {
	notifyUsecase usecase.NotifyUsecase
}

// NewNotifyHandler creates a new NotifyHandler
func NewNotifyHandler(notifyUsecase usecase.NotifyUsecase) *NotifyHandler {
	return &NotifyHandler{
		notifyUsecase: notifyUsecase,
	}
}

// EmitEvent handles POST /api/notifications/events
func (h *NotifyHandler) EmitEvent(c *gin.Context) {
	var event domain.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.notifyUsecase.EmitEvent(c.Request.Context(), event)
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

type adminSendRequest struct {
	Target   domain.Target   `json:"target"`
	Category domain.Category `json:"category"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Link     string          `json:"link"`
}

// AdminSend handles POST /api/notifications/send
func (h *NotifyHandler) AdminSend(c *gin.Context) {
	var req adminSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	summary, err := h.notifyUsecase.AdminSend(c.Request.Context(), usecase.AdminSendInput{
		Target:   req.Target,
		Category: req.Category,
		Title:    req.Title,
		Body:     req.Body,
		Link:     req.Link,
	})
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
