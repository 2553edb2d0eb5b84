package http

import (
	"time"

	"github.com/dimaskresna/campus-booking-backend/internal/notification"
)

type ListNotificationsRequest struct {
	UnreadOnly bool `form:"unread_only"`
	Page       int  `form:"page,default=1" binding:"min=1"`
	PageSize   int  `form:"page_size,default=20" binding:"min=1,max=100"`
}

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
