package doctor

import (
	"context"
	"testing"

	"github.com/ayushhh101/Team-Champions-1-sub000/internal/platform/apperr"
)

type mockRepo struct {
	items map[string]*Doctor
	order []string
}

func newMockRepo() *mockRepo {
	return &mockRepo{items: make(map[string]*Doctor)}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	cp := *d
	m.items[d.ID] = &cp
	m.order = append(m.order, d.ID)
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Doctor, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, apperr.NotFoundf("doctor %s", id)
	}
	cp := *d
	return &cp, nil
}

func (m *mockRepo) Update(_ context.Context, d *Doctor) error {
	cp := *d
	m.items[d.ID] = &cp
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Doctor, error) {
	var result []*Doctor
	for _, id := range m.order {
		if d, ok := m.items[id]; ok {
			cp := *d
			result = append(result, &cp)
		}
	}
	return result, nil
}

func TestCreateDoctor(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	d := &Doctor{Name: "Dr. Mehta", Speciality: "Cardiology", Fee: 500}
	if err := svc.Create(ctx, d); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if !d.Active {
		t.Error("new doctor must start active")
	}
	if d.Rating != 0 || d.RatingCount != 0 {
		t.Error("new doctor must start unrated")
	}
}

func TestCreateDoctorValidation(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	if err := svc.Create(ctx, &Doctor{Speciality: "Cardiology"}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for missing name, got %v", err)
	}
	if err := svc.Create(ctx, &Doctor{Name: "Dr. Mehta"}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for missing speciality, got %v", err)
	}
	if err := svc.Create(ctx, &Doctor{Name: "Dr. Mehta", Speciality: "Cardiology", Fee: -1}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for negative fee, got %v", err)
	}
}

func TestSearchDoctors(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	cardio := &Doctor{Name: "Dr. Mehta", Speciality: "Cardiology"}
	derm := &Doctor{Name: "Dr. Rao", Speciality: "Dermatology"}
	for _, d := range []*Doctor{cardio, derm} {
		if err := svc.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if err := svc.Deactivate(ctx, derm.ID); err != nil {
		t.Fatalf("Deactivate failed: %v", err)
	}

	bySpec, err := svc.Search(ctx, "cardiology", "", true)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(bySpec) != 1 || bySpec[0].ID != cardio.ID {
		t.Errorf("speciality search returned %d results", len(bySpec))
	}

	byName, err := svc.Search(ctx, "", "mehta", true)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(byName) != 1 || byName[0].ID != cardio.ID {
		t.Errorf("name search returned %d results", len(byName))
	}

	active, err := svc.Search(ctx, "", "", true)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("expected inactive doctor to be hidden, got %d results", len(active))
	}

	all, err := svc.Search(ctx, "", "", false)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 doctors including inactive, got %d", len(all))
	}
}

func TestUpdatePreservesRating(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	d := &Doctor{Name: "Dr. Mehta", Speciality: "Cardiology"}
	if err := svc.Create(ctx, d); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.UpdateRating(ctx, d.ID, 4.5, 12); err != nil {
		t.Fatalf("UpdateRating failed: %v", err)
	}

	update := &Doctor{ID: d.ID, Name: "Dr. Mehta", Speciality: "Cardiology", Rating: 1, RatingCount: 1}
	if err := svc.Update(ctx, update); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := svc.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Rating != 4.5 || got.RatingCount != 12 {
		t.Errorf("update must not overwrite rating, got %.1f (%d)", got.Rating, got.RatingCount)
	}
}

func TestDeleteDoctor(t *testing.T) {
	svc := NewService(newMockRepo())
	ctx := context.Background()

	d := &Doctor{Name: "Dr. Mehta", Speciality: "Cardiology"}
	if err := svc.Create(ctx, d); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Delete(ctx, d.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, d.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found on second delete, got %v", err)
	}
}
