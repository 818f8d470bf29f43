package player

import "context"

// Repository defines player persistence operations
type Repository interface {
	Find(ctx context.Context, playerID string) (*Player, error)
	// FindFirst returns the earliest-created player, or nil when none is
	// stored yet
	FindFirst(ctx context.Context) (*Player, error)
	Save(ctx context.Context, player *Player) error
}
