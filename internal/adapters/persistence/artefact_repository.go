package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// GormArtefactRepository implements artifact.Repository using GORM
type GormArtefactRepository struct {
	db *gorm.DB
}

var _ artifact.Repository = (*GormArtefactRepository)(nil)

// NewGormArtefactRepository creates a new GORM artifact repository
func NewGormArtefactRepository(db *gorm.DB) *GormArtefactRepository {
	return &GormArtefactRepository{db: db}
}

// Find retrieves an artifact by ID
func (r *GormArtefactRepository) Find(ctx context.Context, id string) (*artifact.Artefact, error) {
	var model ArtefactModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, shared.NewNotFoundError("artifact", id)
		}
		return nil, fmt.Errorf("failed to find artifact: %w", result.Error)
	}

	return modelToArtefact(&model)
}

// FindAll retrieves every stored artifact in discovery order
func (r *GormArtefactRepository) FindAll(ctx context.Context) ([]*artifact.Artefact, error) {
	var models []ArtefactModel
	result := r.db.WithContext(ctx).Order("discovered_at").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", result.Error)
	}

	artifacts := make([]*artifact.Artefact, 0, len(models))
	for i := range models {
		a, err := modelToArtefact(&models[i])
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// FindInventory retrieves the artifacts not on display, in discovery order
func (r *GormArtefactRepository) FindInventory(ctx context.Context) ([]*artifact.Artefact, error) {
	return r.findByExhibited(ctx, 0)
}

// FindExhibited retrieves the artifacts on the museum floor
func (r *GormArtefactRepository) FindExhibited(ctx context.Context) ([]*artifact.Artefact, error) {
	return r.findByExhibited(ctx, 1)
}

func (r *GormArtefactRepository) findByExhibited(ctx context.Context, exhibited int) ([]*artifact.Artefact, error) {
	var models []ArtefactModel
	result := r.db.WithContext(ctx).Where("exhibited = ?", exhibited).Order("discovered_at").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", result.Error)
	}

	artifacts := make([]*artifact.Artefact, 0, len(models))
	for i := range models {
		a, err := modelToArtefact(&models[i])
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// MarkExhibited flips the on-display flag for a stored artifact
func (r *GormArtefactRepository) MarkExhibited(ctx context.Context, id string, exhibited bool) error {
	value := 0
	if exhibited {
		value = 1
	}
	result := r.db.WithContext(ctx).Model(&ArtefactModel{}).Where("id = ?", id).Update("exhibited", value)
	if result.Error != nil {
		return fmt.Errorf("failed to update artifact: %w", result.Error)
	}
	return nil
}

// Save persists an artifact, creating or updating its row
func (r *GormArtefactRepository) Save(ctx context.Context, a *artifact.Artefact) error {
	model, err := artefactToModel(a)
	if err != nil {
		return fmt.Errorf("failed to convert artifact to model: %w", err)
	}

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save artifact: %w", result.Error)
	}
	return nil
}

// Delete removes an artifact row, e.g. after a sale
func (r *GormArtefactRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&ArtefactModel{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete artifact: %w", result.Error)
	}
	return nil
}

func modelToArtefact(model *ArtefactModel) (*artifact.Artefact, error) {
	var bonuses []artifact.Bonus
	if model.Bonuses != "" {
		if err := json.Unmarshal([]byte(model.Bonuses), &bonuses); err != nil {
			return nil, fmt.Errorf("failed to decode bonuses: %w", err)
		}
	}

	return artifact.Restore(artifact.RestoreState{
		ID:           model.ID,
		Name:         model.Name,
		Type:         artifact.Type(model.Type),
		Rarity:       artifact.Rarity(model.Rarity),
		Value:        model.Value,
		Identified:   model.Identified == 1,
		TileID:       model.TileID,
		Provenience:  model.Provenience,
		Style:        model.Style,
		Material:     model.Material,
		Age:          model.Age,
		Inscription:  model.Inscription,
		SetName:      model.SetName,
		Bonuses:      bonuses,
		DiscoveredAt: model.DiscoveredAt,
		IdentifiedAt: model.IdentifiedAt,
	}), nil
}

func artefactToModel(a *artifact.Artefact) (*ArtefactModel, error) {
	bonuses, err := json.Marshal(a.Bonuses())
	if err != nil {
		return nil, fmt.Errorf("failed to encode bonuses: %w", err)
	}

	identified := 0
	if a.Identified() {
		identified = 1
	}

	return &ArtefactModel{
		ID:           a.ID(),
		Name:         a.Name(),
		Type:         string(a.Type()),
		Rarity:       string(a.Rarity()),
		Value:        a.Value(),
		Identified:   identified,
		TileID:       a.TileID(),
		Provenience:  a.Provenience(),
		Style:        a.Style(),
		Material:     a.Material(),
		Age:          a.Age(),
		Inscription:  a.Inscription(),
		SetName:      a.SetName(),
		Bonuses:      string(bonuses),
		DiscoveredAt: a.DiscoveredAt(),
		IdentifiedAt: a.IdentifiedAt(),
	}, nil
}
