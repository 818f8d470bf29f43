package site_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/site"
)

func TestTile_ExcavateIsIdempotentAndMonotonic(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	tile := site.NewTile("site-1", site.Position{X: 1, Y: 1}, 0, clock)

	tile.Excavate()
	require.True(t, tile.IsExcavated())
	firstStamp := *tile.ExcavatedAt()

	clock.Advance(time.Hour)
	tile.Excavate()

	assert.True(t, tile.IsExcavated(), "excavated flag never reverts")
	assert.Equal(t, firstStamp, *tile.ExcavatedAt(), "second excavation is a no-op")
}

func TestTile_ArtifactLinks(t *testing.T) {
	tile := site.NewTile("site-1", site.Position{}, 0, nil)

	tile.AddArtifact("artefact-1")
	tile.AddArtifact("artefact-1")
	tile.AddArtifact("artefact-2")
	assert.Equal(t, []string{"artefact-1", "artefact-2"}, tile.Artifacts())

	tile.RemoveArtifact("artefact-1")
	assert.Equal(t, []string{"artefact-2"}, tile.Artifacts())
}

func TestTile_CloneIsDeep(t *testing.T) {
	tile := site.NewTile("site-1", site.Position{X: 2, Y: 0}, 1, nil)
	tile.AddArtifact("artefact-1")

	clone := tile.Clone()
	clone.AddArtifact("artefact-2")
	clone.Excavate()

	assert.Equal(t, tile.ID(), clone.ID(), "clone keeps identity")
	assert.Len(t, tile.Artifacts(), 1, "live tile untouched")
	assert.False(t, tile.IsExcavated())
}

func TestGenerateGrid_FixedLayout(t *testing.T) {
	s := newTestSite(4)
	grid := site.GenerateGrid(s, nil)

	// 3x3 base layer + 5 second-layer tiles + 1 third-layer tile
	assert.Equal(t, 15, grid.Len())

	center, ok := grid.TopAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, 2, center.Layer(), "top of the center stack is the deepest tile")

	edge, ok := grid.TopAt(0, 1)
	require.True(t, ok)
	assert.Equal(t, 1, edge.Layer())

	corner, ok := grid.TopAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, 0, corner.Layer())

	assert.Len(t, grid.Stack(site.Position{X: 1, Y: 1}), 3)
}

func TestGenerateGrid_SingleLayerSite(t *testing.T) {
	s := newTestSite(1)
	grid := site.GenerateGrid(s, nil)

	assert.Equal(t, 9, grid.Len())
	top, ok := grid.TopAt(1, 1)
	require.True(t, ok)
	assert.Equal(t, 0, top.Layer())
}
