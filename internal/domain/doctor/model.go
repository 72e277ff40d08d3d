package doctor

import "time"

type Doctor struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Speciality    string    `json:"speciality"`
	Qualification string    `json:"qualification,omitempty"`
	Experience    int       `json:"experience,omitempty"`
	Fee           float64   `json:"fee,omitempty"`
	Rating        float64   `json:"rating"`
	RatingCount   int       `json:"ratingCount"`
	About         string    `json:"about,omitempty"`
	AvailableDays []string  `json:"availableDays,omitempty"`
	StartTime     string    `json:"startTime,omitempty"`
	EndTime       string    `json:"endTime,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
