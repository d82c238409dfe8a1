package employee

import "context"

// Repository defines read access to employee profiles. Profile CRUD lives
// in a separate system; this service only consumes the canonical shape.
type Repository interface {
	Find(ctx context.Context, filter Filter) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)
}
