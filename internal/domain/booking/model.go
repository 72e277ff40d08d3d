package booking

import "time"

// Booking statuses. Transitions are one-directional: a confirmed booking can
// become completed or cancelled, and neither of those ever changes again.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentPaid    = "paid"
	PaymentNotPaid = "not_paid"
)

// Classification buckets used by clients to group bookings into tabs.
const (
	ClassUpcoming  = "upcoming"
	ClassCompleted = "completed"
	ClassCancelled = "cancelled"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// PatientDetails carries the intake details collected for a visit.
type PatientDetails struct {
	Age          int    `json:"age,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Weight       string `json:"weight,omitempty"`
	Problem      string `json:"problem,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// PaymentDetails records card metadata after a payment. No gateway is
// involved; this is bookkeeping only.
type PaymentDetails struct {
	CardHolder string `json:"cardHolder,omitempty"`
	CardLast4  string `json:"cardLast4,omitempty"`
	Method     string `json:"method,omitempty"`
}

type Booking struct {
	ID             string          `json:"id"`
	DoctorID       string          `json:"doctorId"`
	DoctorName     string          `json:"doctorName,omitempty"`
	Speciality     string          `json:"speciality,omitempty"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	PatientID      string          `json:"patientId"`
	PatientName    string          `json:"patientName"`
	PatientPhone   string          `json:"patientPhone,omitempty"`
	PatientEmail   string          `json:"patientEmail,omitempty"`
	Price          float64         `json:"price,omitempty"`
	Status         string          `json:"status"`
	PaymentStatus  string          `json:"paymentStatus"`
	Notes          string          `json:"notes,omitempty"`
	PatientDetails *PatientDetails `json:"patientDetails,omitempty"`
	PaymentDetails *PaymentDetails `json:"paymentDetails,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// StartTime parses the booking's date and time ("2006-01-02" + "15:04") in
// the server's local timezone. ok is false when either value is malformed.
func (b *Booking) StartTime() (start time.Time, ok bool) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, b.Date+" "+b.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Classify buckets a booking for display. Cancelled and completed bookings
// map to their own buckets. A confirmed booking whose start time is strictly
// in the past counts as completed even though its stored status still says
// confirmed; clients rely on this when building their history tab. Confirmed
// bookings with an unparsable date stay upcoming.
func Classify(b *Booking, now time.Time) string {
	switch b.Status {
	case StatusCancelled:
		return ClassCancelled
	case StatusCompleted:
		return ClassCompleted
	}
	if start, ok := b.StartTime(); ok && start.Before(now) {
		return ClassCompleted
	}
	return ClassUpcoming
}

// View pairs a booking with its display classification.
type View struct {
	*Booking
	Classification string `json:"classification"`
}
