package artifact

import "context"

// Repository defines artifact persistence operations. Stored artifacts are
// split between the inventory and the museum floor by the exhibited flag.
type Repository interface {
	Find(ctx context.Context, id string) (*Artefact, error)
	FindAll(ctx context.Context) ([]*Artefact, error)
	FindInventory(ctx context.Context) ([]*Artefact, error)
	FindExhibited(ctx context.Context) ([]*Artefact, error)
	Save(ctx context.Context, a *Artefact) error
	MarkExhibited(ctx context.Context, id string, exhibited bool) error
	Delete(ctx context.Context, id string) error
}
