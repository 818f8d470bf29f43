package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/adapters/persistence"
	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/test/helpers"
)

func TestPlayerRepository_SaveAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	p := player.NewPlayer(1000)
	require.NoError(t, p.Hire(player.RoleWorker, 5, 50))
	require.NoError(t, p.Hire(player.RoleArchaeologist, 2, 200))
	p.AddReputation(3)
	p.DiscoverSite("site-abc123")

	require.NoError(t, repo.Save(context.Background(), p))

	found, err := repo.Find(context.Background(), p.ID())
	require.NoError(t, err)

	assert.Equal(t, p.ID(), found.ID())
	assert.Equal(t, 350, found.Money())
	assert.Equal(t, 3, found.Reputation())
	assert.Equal(t, 5, found.Crew().Workers)
	assert.Equal(t, 2, found.Crew().Archaeologists)
	assert.Equal(t, []string{"site-abc123"}, found.DiscoveredSites())
}

func TestPlayerRepository_SaveIsUpsert(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	p := player.NewPlayer(1000)
	require.NoError(t, repo.Save(context.Background(), p))

	p.AddMoney(500)
	require.NoError(t, repo.Save(context.Background(), p))

	found, err := repo.Find(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Equal(t, 1500, found.Money())
}

func TestPlayerRepository_FindMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlayerRepository(db)

	_, err := repo.Find(context.Background(), "player-00000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
