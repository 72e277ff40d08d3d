package notification

import "time"

// Notification types shown by the client UI.
const (
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeInfo    = "info"
	TypeError   = "error"
)

// Recipient kinds. Patients authenticate as plain users, so their
// notifications carry the "user" recipient type.
const (
	RecipientUser   = "user"
	RecipientDoctor = "doctor"
)

type Notification struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	RecipientID   string    `json:"recipientId"`
	RecipientType string    `json:"recipientType"`
	RelatedID     string    `json:"relatedId,omitempty"`
	RelatedType   string    `json:"relatedType,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Read          bool      `json:"read"`
}
