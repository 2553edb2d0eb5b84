package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimaskresna/campus-booking-backend/internal/auth"
	"github.com/dimaskresna/campus-booking-backend/internal/notification"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/request"
	"github.com/dimaskresna/campus-booking-backend/internal/pkg/response"
)

type Handler struct {
	service notification.Service
}

func NewHandler(service notification.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	items, total, err := h.service.List(c.Request.Context(), notification.Filter{
		UserID:     auth.GetUserID(c),
		UnreadOnly: req.UnreadOnly,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		result = append(result, toNotificationResponse(n))
	}

	c.JSON(http.StatusOK, response.NewPageResponse(result, req.Page, req.PageSize, total))
}

func (h *Handler) MarkRead(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), auth.GetUserID(c), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.service.MarkAllRead(c.Request.Context(), auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.CountUnread(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread": count})
}
