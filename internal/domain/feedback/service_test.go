package feedback

import (
	"context"
	"math"
	"testing"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

type mockRepo struct {
	items map[string]*Feedback
	order []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[string]*Feedback)}
}

func (m *mockRepo) Create(_ context.Context, f *Feedback) error {
	cp := *f
	m.items[f.ID] = &cp
	m.order = append(m.order, f.ID)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Feedback, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, apperr.NotFoundf("feedback %s", id)
	}
	cp := *f
	return &cp, nil
}

func (m *mockRepo) ListByDoctor(_ context.Context, doctorID string) ([]*Feedback, error) {
	var result []*Feedback
	for _, id := range m.order {
		f := m.items[id]
		if f.DoctorID == doctorID {
			cp := *f
			result = append(result, &cp)
		}
	}
	return result, nil
}

type mockRatings struct {
	doctorID string
	average  float64
	count    int
	calls    int
}

func (m *mockRatings) UpdateRating(_ context.Context, doctorID string, average float64, count int) error {
	m.doctorID = doctorID
	m.average = average
	m.count = count
	m.calls++
	return nil
}

func newTestFeedback(rating int) *Feedback {
	return &Feedback{
		DoctorID:  "doc-1",
		PatientID: "user-1",
		BookingID: "booking-1",
		Rating:    rating,
		Comment:   "Very helpful",
	}
}

func TestCreateFeedbackUpdatesDoctorRating(t *testing.T) {
	repo := newMockRepo()
	ratings := &mockRatings{}
	svc := NewService(repo, ratings)
	ctx := context.Background()

	if err := svc.Create(ctx, newTestFeedback(4)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Create(ctx, newTestFeedback(5)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if ratings.calls != 2 {
		t.Fatalf("expected 2 rating updates, got %d", ratings.calls)
	}
	if ratings.doctorID != "doc-1" || ratings.count != 2 {
		t.Errorf("unexpected rating update: doctor=%s count=%d", ratings.doctorID, ratings.count)
	}
	if math.Abs(ratings.average-4.5) > 1e-9 {
		t.Errorf("expected average 4.5, got %f", ratings.average)
	}
}

func TestCreateFeedbackValidation(t *testing.T) {
	repo := newMockRepo()
	ratings := &mockRatings{}
	svc := NewService(repo, ratings)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Feedback)
	}{
		{"missing doctorId", func(f *Feedback) { f.DoctorID = "" }},
		{"missing patientId", func(f *Feedback) { f.PatientID = "" }},
		{"rating too low", func(f *Feedback) { f.Rating = 0 }},
		{"rating too high", func(f *Feedback) { f.Rating = 6 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFeedback(3)
			tt.mutate(f)
			if err := svc.Create(ctx, f); !apperr.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	if len(repo.items) != 0 {
		t.Error("nothing should be stored on validation failure")
	}
	if ratings.calls != 0 {
		t.Error("no rating update may happen on validation failure")
	}
}

func TestAverageRatingNoEntries(t *testing.T) {
	svc := NewService(newMockRepo(), &mockRatings{})

	avg, count, err := svc.AverageRating(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("AverageRating failed: %v", err)
	}
	if avg != 0 || count != 0 {
		t.Errorf("expected zero average and count, got %f/%d", avg, count)
	}
}

func TestListByDoctorScoped(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, &mockRatings{})
	ctx := context.Background()

	if err := svc.Create(ctx, newTestFeedback(5)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	other := newTestFeedback(2)
	other.DoctorID = "doc-2"
	if err := svc.Create(ctx, other); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	items, err := svc.ListByDoctor(ctx, "doc-1")
	if err != nil {
		t.Fatalf("ListByDoctor failed: %v", err)
	}
	if len(items) != 1 || items[0].Rating != 5 {
		t.Errorf("expected only doc-1 feedback, got %d items", len(items))
	}
}
