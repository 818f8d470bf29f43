package site_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/domain/site"
)

func newTestSite(layers int) *site.Site {
	return site.NewSite("Tell Abu Salabikh", 3, site.Position{X: 10, Y: 15}, site.DifficultyMedium, layers, "Ur III")
}

func TestSite_ExcavationRequiresDiscovery(t *testing.T) {
	s := newTestSite(4)

	err := s.StartExcavation()

	require.Error(t, err)
	assert.False(t, s.ExcavationStarted())

	s.Discover()
	require.NoError(t, s.StartExcavation())
	assert.True(t, s.ExcavationStarted())
}

func TestSite_DiscoveryProgress(t *testing.T) {
	s := newTestSite(1)
	s.Discover()

	assert.Equal(t, 9, s.TotalTiles())
	assert.Zero(t, s.DiscoveryProgress())

	s.AddDiscoveredTile("tile-1")
	s.AddDiscoveredTile("tile-1") // duplicate ignored
	s.AddDiscoveredTile("tile-2")

	assert.Len(t, s.DiscoveredTiles(), 2)
	assert.InDelta(t, 2.0/9.0, s.DiscoveryProgress(), 1e-9)
}
