package notification

import (
	"context"
	"log"
)

// Recipient is the slice of user data the service needs for email delivery.
type Recipient struct {
	Email    string
	FullName string
}

// RecipientLookup resolves a user ID to an email recipient.
type RecipientLookup interface {
	GetRecipient(ctx context.Context, userID int64) (Recipient, error)
}

type Service interface {
	// Notify persists an in-app notification and sends a best-effort
	// email copy. Email failures are logged, never returned: a booking
	// decision must not fail because the mail provider is down.
	Notify(ctx context.Context, userID int64, title, message string) error
	List(ctx context.Context, filter Filter) ([]*Notification, int, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	CountUnread(ctx context.Context, userID int64) (int, error)
}

type service struct {
	repo       Repository
	mailer     Mailer
	recipients RecipientLookup
}

func NewService(repo Repository, mailer Mailer, recipients RecipientLookup) Service {
	return &service{
		repo:       repo,
		mailer:     mailer,
		recipients: recipients,
	}
}

func (s *service) Notify(ctx context.Context, userID int64, title, message string) error {
	n := &Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	rcpt, err := s.recipients.GetRecipient(ctx, userID)
	if err != nil {
		log.Printf("notification %d: resolve recipient for user %d failed: %v", n.ID, userID, err)
		return nil
	}

	if err := s.mailer.Send(rcpt.Email, rcpt.FullName, title, message); err != nil {
		log.Printf("notification %d: email to user %d failed: %v", n.ID, userID, err)
	}
	return nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Notification, int, error) {
	return s.repo.ListByUser(ctx, filter)
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.repo.MarkRead(ctx, userID, notificationID)
}

func (s *service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *service) CountUnread(ctx context.Context, userID int64) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}
