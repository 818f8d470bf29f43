package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// GormPlayerRepository implements player.Repository using GORM
type GormPlayerRepository struct {
	db *gorm.DB
}

var _ player.Repository = (*GormPlayerRepository)(nil)

// NewGormPlayerRepository creates a new GORM player repository
func NewGormPlayerRepository(db *gorm.DB) *GormPlayerRepository {
	return &GormPlayerRepository{db: db}
}

// Find retrieves a player by ID
func (r *GormPlayerRepository) Find(ctx context.Context, playerID string) (*player.Player, error) {
	var model PlayerModel
	result := r.db.WithContext(ctx).Where("id = ?", playerID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("player", playerID)
		}
		return nil, fmt.Errorf("failed to find player: %w", result.Error)
	}

	return modelToPlayer(&model)
}

// FindFirst retrieves the earliest stored player, nil when the table is
// empty. The CLI uses it to resume the previous expedition.
func (r *GormPlayerRepository) FindFirst(ctx context.Context) (*player.Player, error) {
	var model PlayerModel
	result := r.db.WithContext(ctx).Order("created_at").First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find player: %w", result.Error)
	}

	return modelToPlayer(&model)
}

// Save persists a player, creating or updating its row
func (r *GormPlayerRepository) Save(ctx context.Context, p *player.Player) error {
	model, err := playerToModel(p)
	if err != nil {
		return fmt.Errorf("failed to convert player to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save player: %w", result.Error)
	}
	return nil
}

func modelToPlayer(model *PlayerModel) (*player.Player, error) {
	var discoveredSites []string
	if model.DiscoveredSites != "" {
		if err := json.Unmarshal([]byte(model.DiscoveredSites), &discoveredSites); err != nil {
			return nil, fmt.Errorf("failed to decode discovered sites: %w", err)
		}
	}

	crew := shared.Crew{
		Workers:        model.Workers,
		Archaeologists: model.Archaeologists,
		Linguists:      model.Linguists,
	}
	return player.RestorePlayer(model.ID, model.Money, model.Reputation, crew, discoveredSites), nil
}

func playerToModel(p *player.Player) (*PlayerModel, error) {
	discoveredSites, err := json.Marshal(p.DiscoveredSites())
	if err != nil {
		return nil, fmt.Errorf("failed to encode discovered sites: %w", err)
	}

	crew := p.Crew()
	return &PlayerModel{
		ID:              p.ID(),
		Money:           p.Money(),
		Reputation:      p.Reputation(),
		Workers:         crew.Workers,
		Archaeologists:  crew.Archaeologists,
		Linguists:       crew.Linguists,
		DiscoveredSites: string(discoveredSites),
	}, nil
}
