package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

var validTypes = map[string]bool{
	TypeSuccess: true, TypeWarning: true, TypeInfo: true, TypeError: true,
}

var validRecipientTypes = map[string]bool{
	RecipientUser: true, RecipientDoctor: true,
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateRecipient(recipientID, recipientType string) error {
	if recipientID == "" {
		return apperr.Validationf("recipientId is required")
	}
	if !validRecipientTypes[recipientType] {
		return apperr.Validationf("recipientType must be %q or %q", RecipientUser, RecipientDoctor)
	}
	return nil
}

// Create validates and stores a new notification. The ID, timestamp, and
// read flag are always assigned server-side.
func (s *Service) Create(ctx context.Context, n *Notification) error {
	if n.Type == "" {
		return apperr.Validationf("type is required")
	}
	if !validTypes[n.Type] {
		return apperr.Validationf("invalid notification type: %s", n.Type)
	}
	if n.Title == "" {
		return apperr.Validationf("title is required")
	}
	if n.Message == "" {
		return apperr.Validationf("message is required")
	}
	if err := validateRecipient(n.RecipientID, n.RecipientType); err != nil {
		return err
	}

	n.ID = uuid.NewString()
	n.Timestamp = time.Now().UTC()
	n.Read = false

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	return nil
}

// Notify records a system-generated notification for a recipient. Other
// services use it to announce booking and prescription events.
func (s *Service) Notify(ctx context.Context, typ, title, message, recipientID, recipientType, relatedID, relatedType string) error {
	n := &Notification{
		Type:          typ,
		Title:         title,
		Message:       message,
		RecipientID:   recipientID,
		RecipientType: recipientType,
		RelatedID:     relatedID,
		RelatedType:   relatedType,
	}
	return s.Create(ctx, n)
}

// List returns the recipient's notifications in insertion order, optionally
// narrowed to unread ones.
func (s *Service) List(ctx context.Context, recipientID, recipientType string, unreadOnly bool) ([]*Notification, error) {
	if err := validateRecipient(recipientID, recipientType); err != nil {
		return nil, err
	}
	items, err := s.repo.ListByRecipient(ctx, recipientID, recipientType)
	if err != nil {
		return nil, err
	}
	if !unreadOnly {
		return items, nil
	}

	var unread []*Notification
	for _, n := range items {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

// UnreadCount reports how many of the recipient's notifications are unread.
func (s *Service) UnreadCount(ctx context.Context, recipientID, recipientType string) (int, error) {
	if err := validateRecipient(recipientID, recipientType); err != nil {
		return 0, err
	}
	items, err := s.repo.ListByRecipient(ctx, recipientID, recipientType)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkRead flags a single notification as read. It reports false when the
// notification does not exist or belongs to a different recipient; marking
// an already-read notification is a no-op that still reports true.
func (s *Service) MarkRead(ctx context.Context, recipientID, recipientType, id string) (bool, error) {
	if err := validateRecipient(recipientID, recipientType); err != nil {
		return false, err
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if n.RecipientID != recipientID || n.RecipientType != recipientType {
		return false, nil
	}
	if n.Read {
		return true, nil
	}

	n.Read = true
	if err := s.repo.Update(ctx, n); err != nil {
		return false, fmt.Errorf("update notification: %w", err)
	}
	return true, nil
}

// MarkAllRead flags every unread notification of the recipient as read.
func (s *Service) MarkAllRead(ctx context.Context, recipientID, recipientType string) error {
	if err := validateRecipient(recipientID, recipientType); err != nil {
		return err
	}

	items, err := s.repo.ListByRecipient(ctx, recipientID, recipientType)
	if err != nil {
		return err
	}
	for _, n := range items {
		if n.Read {
			continue
		}
		n.Read = true
		if err := s.repo.Update(ctx, n); err != nil {
			return fmt.Errorf("update notification: %w", err)
		}
	}
	return nil
}

// Delete removes a single notification. It reports false when the
// notification does not exist or belongs to a different recipient.
func (s *Service) Delete(ctx context.Context, recipientID, recipientType, id string) (bool, error) {
	if err := validateRecipient(recipientID, recipientType); err != nil {
		return false, err
	}

	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if n.RecipientID != recipientID || n.RecipientType != recipientType {
		return false, nil
	}

	return s.repo.Delete(ctx, id)
}
