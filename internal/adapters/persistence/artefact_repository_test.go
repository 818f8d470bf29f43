package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/adapters/persistence"
	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/test/helpers"
)

func TestArtefactRepository_SaveAndFindIdentifiedPiece(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormArtefactRepository(db)

	a := artifact.NewArtefact("tile-1", "Ur", artifact.TypeCylinderSeal, artifact.RarityRare, 400, nil)
	a.Identify("Cylinder Seal", "Neo-Sumerian", "Stone", "Ur III", "Owner Inscription", 1.5)
	a.AddBonus(artifact.Bonus{Type: "Mentioning ruler", Value: 2})

	require.NoError(t, repo.Save(context.Background(), a))

	found, err := repo.Find(context.Background(), a.ID())
	require.NoError(t, err)

	assert.Equal(t, a.ID(), found.ID())
	assert.Equal(t, "Cylinder Seal", found.Name())
	assert.Equal(t, artifact.RarityRare, found.Rarity())
	assert.True(t, found.Identified())
	assert.Equal(t, a.Value(), found.Value())
	assert.Equal(t, "Owner Inscription", found.Inscription())
	require.Len(t, found.Bonuses(), 1)
	assert.Equal(t, "Mentioning ruler", found.Bonuses()[0].Type)
	require.NotNil(t, found.IdentifiedAt())
}

func TestArtefactRepository_FindAllKeepsDiscoveryOrder(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormArtefactRepository(db)

	clock := shared.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	first := artifact.NewArtefact("tile-1", "Ur", artifact.TypePottery, artifact.RarityCommon, 20, clock)
	clock.Advance(time.Second)
	second := artifact.NewArtefact("tile-2", "Ur", artifact.TypeStatue, artifact.RarityRare, 300, clock)

	require.NoError(t, repo.Save(context.Background(), second))
	require.NoError(t, repo.Save(context.Background(), first))

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID(), all[0].ID())
	assert.Equal(t, second.ID(), all[1].ID())
}

func TestArtefactRepository_DeleteAfterSale(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormArtefactRepository(db)

	a := artifact.NewArtefact("tile-1", "Kish", artifact.TypeTool, artifact.RarityCommon, 15, nil)
	require.NoError(t, repo.Save(context.Background(), a))
	require.NoError(t, repo.Delete(context.Background(), a.ID()))

	_, err := repo.Find(context.Background(), a.ID())
	assert.Error(t, err)
}

func TestArtefactRepository_MarkExhibitedSplitsInventoryAndFloor(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormArtefactRepository(db)

	stored := artifact.NewArtefact("tile-1", "Nippur", artifact.TypePottery, artifact.RarityCommon, 25, nil)
	shown := artifact.NewArtefact("tile-2", "Nippur", artifact.TypeStatue, artifact.RarityRare, 400, nil)
	require.NoError(t, repo.Save(context.Background(), stored))
	require.NoError(t, repo.Save(context.Background(), shown))
	require.NoError(t, repo.MarkExhibited(context.Background(), shown.ID(), true))

	inventory, err := repo.FindInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, inventory, 1)
	assert.Equal(t, stored.ID(), inventory[0].ID())

	displayed, err := repo.FindExhibited(context.Background())
	require.NoError(t, err)
	require.Len(t, displayed, 1)
	assert.Equal(t, shown.ID(), displayed[0].ID())

	// taking it off the floor again
	require.NoError(t, repo.MarkExhibited(context.Background(), shown.ID(), false))
	inventory, err = repo.FindInventory(context.Background())
	require.NoError(t, err)
	assert.Len(t, inventory, 2)
}
