package app

import (
	"context"

	"github.com/dimaskresna/campus-booking-backend/internal/notification"
	"github.com/dimaskresna/campus-booking-backend/internal/user"
)

// userRecipients adapts the user service to the notification module's
// recipient lookup.
type userRecipients struct {
	users user.Service
}

func (r userRecipients) GetRecipient(ctx context.Context, userID int64) (notification.Recipient, error) {
	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return notification.Recipient{}, err
	}
	return notification.Recipient{
		Email:    u.Email,
		FullName: u.FullName,
	}, nil
}
