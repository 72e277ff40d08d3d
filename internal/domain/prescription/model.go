package prescription

import "time"

type Medicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

type Prescription struct {
	ID        string     `json:"id"`
	BookingID string     `json:"bookingId"`
	DoctorID  string     `json:"doctorId"`
	PatientID string     `json:"patientId"`
	Medicines []Medicine `json:"medicines"`
	Diagnosis string     `json:"diagnosis,omitempty"`
	Advice    string     `json:"advice,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
