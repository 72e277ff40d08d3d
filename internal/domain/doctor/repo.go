package doctor

import "context"

// Repository stores doctor profiles.
type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id string) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*Doctor, error)
}
