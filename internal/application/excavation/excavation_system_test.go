package excavation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/application/excavation"
	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/site"
	"github.com/tellsim/tellsim-go/internal/domain/task"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

func newRules(t *testing.T) *config.RulesConfig {
	t.Helper()
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	return &cfg.Rules
}

func newDiscoveredSite(t *testing.T) *site.Site {
	t.Helper()
	s := site.NewSite("Tell Abu Salabikh", 3, site.Position{X: 45, Y: 40}, site.DifficultyMedium, 4, "Ur III")
	s.Discover()
	require.NoError(t, s.StartExcavation())
	return s
}

func newTask(taskType task.Type, clock shared.Clock) *task.Task {
	return task.NewTask(taskType, "player-1", shared.Crew{Workers: 5, Archaeologists: 2, Linguists: 1}, 0, time.Second, clock)
}

func TestExecute_AlwaysExcavatesFreshTiles(t *testing.T) {
	rules := newRules(t)
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	sys := excavation.NewSystem(rules, shared.NewSeededRand(1), clock)

	s := newDiscoveredSite(t)
	tile := site.NewTile(s.ID(), site.Position{X: 0, Y: 0}, 0, clock)

	result := sys.Execute(newTask(task.TypeTrench, clock), s, []*site.Tile{tile})

	require.Len(t, result.Tiles, 1)
	assert.True(t, result.Tiles[0].IsExcavated())
	require.NotNil(t, result.Tiles[0].ExcavatedAt())
	assert.Equal(t, clock.Now(), *result.Tiles[0].ExcavatedAt())
}

func TestExecute_DoesNotMutateInputTiles(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(2), nil)

	s := newDiscoveredSite(t)
	tile := site.NewTile(s.ID(), site.Position{X: 1, Y: 1}, 0, nil)

	result := sys.Execute(newTask(task.TypeExcavation, nil), s, []*site.Tile{tile})

	assert.False(t, tile.IsExcavated(), "caller's tile must stay untouched")
	assert.Empty(t, tile.Artifacts())
	require.Len(t, result.Tiles, 1)
	assert.Equal(t, tile.ID(), result.Tiles[0].ID(), "snapshot keeps identity")
}

func TestExecute_SkipsAlreadyExcavatedTiles(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(3), nil)

	s := newDiscoveredSite(t)
	dug := site.NewTile(s.ID(), site.Position{X: 0, Y: 0}, 0, nil)
	dug.Excavate()

	result := sys.Execute(newTask(task.TypeTrench, nil), s, []*site.Tile{dug})
	assert.Empty(t, result.Tiles)
	assert.Empty(t, result.Artifacts)
}

func TestExecute_SkipsForeignTiles(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(4), nil)

	s := newDiscoveredSite(t)
	foreign := site.NewTile("site-other", site.Position{X: 0, Y: 0}, 0, nil)

	result := sys.Execute(newTask(task.TypeTrench, nil), s, []*site.Tile{foreign})
	assert.Empty(t, result.Tiles)
	require.Len(t, result.Information, 1)
	assert.Contains(t, result.Information[0], "does not belong")
}

func TestExecute_TrenchDiscoveryRate(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(42), nil)
	s := newDiscoveredSite(t)

	const trials = 1000
	hits := 0
	for i := 0; i < trials; i++ {
		tile := site.NewTile(s.ID(), site.Position{X: i % 3, Y: i / 3 % 3}, 0, nil)
		result := sys.Execute(newTask(task.TypeTrench, nil), s, []*site.Tile{tile})
		require.Len(t, result.Tiles, 1)
		if len(result.Artifacts) == 1 {
			hits++
		}
	}

	// chance re-sampled per tile in [0.80, 0.95), expected mean 0.875
	assert.InDelta(t, 0.875, float64(hits)/trials, 0.05)
}

func TestExecute_TrenchLootStaysInTable(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(7), nil)
	s := newDiscoveredSite(t)

	allowedTypes := map[string]bool{
		"cuneiform_tablet": true, "cylinder_seal": true, "jewelry": true, "statue": true,
	}
	allowedRarities := map[string]bool{
		"uncommon": true, "rare": true, "very_rare": true, "legendary": true,
	}

	for i := 0; i < 200; i++ {
		tile := site.NewTile(s.ID(), site.Position{X: 0, Y: 0}, 0, nil)
		result := sys.Execute(newTask(task.TypeTrench, nil), s, []*site.Tile{tile})
		for _, found := range result.Artifacts {
			assert.True(t, allowedTypes[string(found.Type())], "unexpected type %s", found.Type())
			assert.True(t, allowedRarities[string(found.Rarity())], "unexpected rarity %s", found.Rarity())

			vr := rules.ValueRange(string(found.Rarity()))
			assert.GreaterOrEqual(t, found.Value(), vr.Min)
			assert.LessOrEqual(t, found.Value(), vr.Max)
			assert.False(t, found.Identified())
		}
	}
}

func TestExecute_SurfaceCollectionNeverYieldsStructures(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(9), nil)
	s := newDiscoveredSite(t)

	for i := 0; i < 300; i++ {
		tile := site.NewTile(s.ID(), site.Position{X: 0, Y: 0}, 0, nil)
		result := sys.Execute(newTask(task.TypeSurfaceCollection, nil), s, []*site.Tile{tile})
		assert.Empty(t, result.Structures)
	}
}

func TestExecute_TrenchStructureRate(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(11), nil)
	s := newDiscoveredSite(t)

	const trials = 1000
	hits := 0
	for i := 0; i < trials; i++ {
		tile := site.NewTile(s.ID(), site.Position{X: 0, Y: 0}, 0, nil)
		result := sys.Execute(newTask(task.TypeTrench, nil), s, []*site.Tile{tile})
		if len(result.Structures) == 1 {
			hits++
			assert.NotEqual(t, site.StructureNone, result.Structures[0].Structure)
		}
	}

	assert.InDelta(t, 0.40, float64(hits)/trials, 0.05)
}

func TestExecute_ArtifactLinkedToSnapshotTile(t *testing.T) {
	rules := newRules(t)
	sys := excavation.NewSystem(rules, shared.NewSeededRand(13), nil)
	s := newDiscoveredSite(t)

	for i := 0; i < 50; i++ {
		tile := site.NewTile(s.ID(), site.Position{X: 0, Y: 0}, 0, nil)
		result := sys.Execute(newTask(task.TypeTrench, nil), s, []*site.Tile{tile})
		if len(result.Artifacts) == 0 {
			continue
		}
		found := result.Artifacts[0]
		assert.Equal(t, tile.ID(), found.TileID())
		assert.Equal(t, "Tell Abu Salabikh", found.Provenience())
		assert.Contains(t, result.Tiles[0].Artifacts(), found.ID())
		return
	}
	t.Fatal("no artifact discovered in 50 trench digs")
}

func TestExecute_ZeroWeightRaritiesAreNeverDrawn(t *testing.T) {
	rules := newRules(t)
	rule := rules.Tasks["surface_collection"]
	rule.DiscoveryChanceMin = 1.0
	rule.DiscoveryChanceMax = 1.0
	rule.Loot.RarityWeights = []config.RarityWeightConfig{
		{Rarity: "common", Weight: 0},
		{Rarity: "rare", Weight: 1},
		{Rarity: "legendary", Weight: 0},
	}
	rules.Tasks["surface_collection"] = rule

	sys := excavation.NewSystem(rules, shared.NewSeededRand(4), nil)
	s := newDiscoveredSite(t)

	tiles := make([]*site.Tile, 0, 200)
	for i := 0; i < 200; i++ {
		tiles = append(tiles, site.NewTile(s.ID(), site.Position{X: i % 3, Y: i / 3}, i, nil))
	}

	result := sys.Execute(newTask(task.TypeSurfaceCollection, nil), s, tiles)

	require.Len(t, result.Artifacts, 200)
	for _, found := range result.Artifacts {
		assert.Equal(t, artifact.RarityRare, found.Rarity())
	}
}
