package notification

import "context"

// Repository stores notifications. ListByRecipient returns a recipient's
// notifications in insertion order.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	Update(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id string) (bool, error)
	ListByRecipient(ctx context.Context, recipientID, recipientType string) ([]*Notification, error)
}
