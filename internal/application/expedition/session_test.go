package expedition_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/application/expedition"
	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/site"
	"github.com/tellsim/tellsim-go/internal/domain/task"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

func newSession(t *testing.T, seed int64) (*expedition.GameSession, *shared.MockClock) {
	t.Helper()
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	session, err := expedition.NewGameSession(&cfg.Rules, shared.NewSeededRand(seed), clock)
	require.NoError(t, err)
	return session, clock
}

func homeSite(t *testing.T, session *expedition.GameSession) *site.Site {
	t.Helper()
	st, err := session.SiteByName("Tell Abu Salabikh")
	require.NoError(t, err)
	return st
}

func topTileIDs(t *testing.T, session *expedition.GameSession, siteID string, n int) []string {
	t.Helper()
	grid, err := session.Grid(siteID)
	require.NoError(t, err)

	var ids []string
	for _, tile := range grid.Tiles() {
		top, ok := grid.Top(tile.Position())
		require.True(t, ok)
		if top.ID() != tile.ID() || tile.IsExcavated() {
			continue
		}
		ids = append(ids, tile.ID())
		if len(ids) == n {
			return ids
		}
	}
	t.Fatalf("wanted %d interactable tiles, found %d", n, len(ids))
	return nil
}

func TestSession_BootstrapState(t *testing.T) {
	session, _ := newSession(t, 1)

	p := session.Player()
	assert.Equal(t, 1000, p.Money())
	assert.True(t, p.Crew().IsZero())

	home := homeSite(t, session)
	assert.True(t, home.Discovered())
	assert.True(t, home.ExcavationStarted())

	grid, err := session.Grid(home.ID())
	require.NoError(t, err)
	// 3x3 base layer + 5 second-layer tiles + 1 third-layer tile
	assert.Equal(t, 15, grid.Len())

	assert.Len(t, session.Sites(), 6)
	undiscovered := 0
	for _, st := range session.Sites() {
		if !st.Discovered() {
			undiscovered++
		}
	}
	assert.Equal(t, 5, undiscovered)
}

func TestSession_HiringDebitsMoney(t *testing.T) {
	session, _ := newSession(t, 1)

	require.NoError(t, session.Hire(player.RoleWorker, 5))
	require.NoError(t, session.Hire(player.RoleArchaeologist, 2))

	p := session.Player()
	assert.Equal(t, 350, p.Money())
	assert.Equal(t, 5, p.Crew().Workers)
	assert.Equal(t, 2, p.Crew().Archaeologists)
}

func TestSession_SurveyOpensSiteGrid(t *testing.T) {
	session, _ := newSession(t, 1)
	ur, err := session.SiteByName("Ur")
	require.NoError(t, err)
	require.False(t, ur.Discovered())

	require.NoError(t, session.SurveySite(ur.ID()))

	assert.Equal(t, 700, session.Player().Money())
	assert.True(t, ur.Discovered())
	grid, err := session.Grid(ur.ID())
	require.NoError(t, err)
	assert.Positive(t, grid.Len())
	assert.Contains(t, session.Player().DiscoveredSites(), ur.ID())

	err = session.SurveySite(ur.ID())
	assert.Error(t, err, "second survey of the same site is rejected")
}

func TestSession_SurveyWithoutFundsChangesNothing(t *testing.T) {
	session, _ := newSession(t, 1)
	require.NoError(t, session.Hire(player.RoleArchaeologist, 4)) // $200 left

	ur, err := session.SiteByName("Ur")
	require.NoError(t, err)

	err = session.SurveySite(ur.ID())
	require.Error(t, err)
	assert.False(t, ur.Discovered())
	assert.Equal(t, 200, session.Player().Money())
}

func TestSession_TaskLifecycle(t *testing.T) {
	session, clock := newSession(t, 42)
	home := homeSite(t, session)

	require.NoError(t, session.Hire(player.RoleWorker, 1)) // $950 left
	tiles := topTileIDs(t, session, home.ID(), 2)

	created, err := session.CreateTask(task.TypeSurfaceCollection, home.ID(), tiles)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, created.Status())
	// surface collection on a medium site: 50 base + 1*50 wages
	assert.Equal(t, 850, session.Player().Money())
	assert.True(t, session.Player().Available().IsZero())

	_, err = session.CompleteActiveTask()
	require.Error(t, err, "completion before the duration elapses is refused")

	clock.Advance(2 * time.Second)
	result, err := session.CompleteActiveTask()
	require.NoError(t, err)
	assert.Len(t, result.Tiles, 2)

	grid, err := session.Grid(home.ID())
	require.NoError(t, err)
	for _, tileID := range tiles {
		live, ok := grid.TileByID(tileID)
		require.True(t, ok)
		assert.True(t, live.IsExcavated(), "results merge back into live tiles")
	}

	assert.Equal(t, task.StatusCompleted, created.Status())
	assert.Nil(t, session.ActiveTask())
	assert.Equal(t, 1, session.Player().Available().Workers, "crew released on completion")
	assert.Len(t, session.Inventory(), len(result.Artifacts))
}

func TestSession_SingleActiveTask(t *testing.T) {
	session, _ := newSession(t, 7)
	home := homeSite(t, session)
	require.NoError(t, session.Hire(player.RoleWorker, 2))

	tiles := topTileIDs(t, session, home.ID(), 2)
	_, err := session.CreateTask(task.TypeSurfaceCollection, home.ID(), tiles[:1])
	require.NoError(t, err)

	_, err = session.CreateTask(task.TypeSurfaceCollection, home.ID(), tiles[1:])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in progress")
}

func TestSession_CreateTaskRejectsBuriedTiles(t *testing.T) {
	session, _ := newSession(t, 7)
	home := homeSite(t, session)
	require.NoError(t, session.Hire(player.RoleWorker, 1))

	grid, err := session.Grid(home.ID())
	require.NoError(t, err)
	var buried string
	for _, tile := range grid.Tiles() {
		top, ok := grid.Top(tile.Position())
		require.True(t, ok)
		if top.ID() != tile.ID() {
			buried = tile.ID()
			break
		}
	}
	require.NotEmpty(t, buried)

	_, err = session.CreateTask(task.TypeSurfaceCollection, home.ID(), []string{buried})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buried")
}

func TestSession_CancelReleasesCrewWithoutRefund(t *testing.T) {
	session, _ := newSession(t, 7)
	home := homeSite(t, session)
	require.NoError(t, session.Hire(player.RoleWorker, 1)) // $950

	tiles := topTileIDs(t, session, home.ID(), 1)
	_, err := session.CreateTask(task.TypeSurfaceCollection, home.ID(), tiles)
	require.NoError(t, err)
	moneyAfterStart := session.Player().Money()

	require.NoError(t, session.CancelActiveTask())
	assert.Equal(t, moneyAfterStart, session.Player().Money())
	assert.Equal(t, 1, session.Player().Available().Workers)
	assert.Nil(t, session.ActiveTask())
}

func TestSession_SellArtifactCreditsExactValueAndRemovesByIdentity(t *testing.T) {
	session, _ := newSession(t, 1)
	found := artifact.NewArtefact("tile-x", "Ur", artifact.TypePottery, artifact.RarityUncommon, 120, nil)
	require.NoError(t, session.AddArtifact(found))

	before := session.Player().Money()
	proceeds, err := session.SellArtifact(found.ID())
	require.NoError(t, err)

	assert.Equal(t, 120, proceeds)
	assert.Equal(t, before+120, session.Player().Money())
	_, err = session.Artifact(found.ID())
	assert.Error(t, err)
}

func TestSession_IdentifyReplacesInventoryCopy(t *testing.T) {
	session, _ := newSession(t, 1)
	require.NoError(t, session.Hire(player.RoleArchaeologist, 1))

	found := artifact.NewArtefact("tile-x", "Ur", artifact.TypePottery, artifact.RarityRare, 300, nil)
	require.NoError(t, session.AddArtifact(found))

	result, err := session.IdentifyArtifact(found.ID())
	require.NoError(t, err)
	require.True(t, result.Success)

	stored, err := session.Artifact(found.ID())
	require.NoError(t, err)
	assert.True(t, stored.Identified())
	assert.Greater(t, stored.Value(), 300)
}

func TestSession_ExhibitionRoundTrip(t *testing.T) {
	session, _ := newSession(t, 1)
	piece := artifact.NewArtefact("tile-x", "Ur", artifact.TypeStatue, artifact.RarityRare, 400, nil)
	require.NoError(t, session.AddArtifact(piece))

	require.NoError(t, session.ExhibitArtifact(piece.ID()))
	_, err := session.Artifact(piece.ID())
	assert.Error(t, err, "exhibited piece leaves the inventory")

	require.NoError(t, session.RetireExhibit(piece.ID()))
	back, err := session.Artifact(piece.ID())
	require.NoError(t, err)
	assert.Same(t, piece, back)
}

func TestSession_PlaceCampStructure(t *testing.T) {
	session, clock := newSession(t, 42)
	home := homeSite(t, session)
	require.NoError(t, session.Hire(player.RoleWorker, 1))

	tiles := topTileIDs(t, session, home.ID(), 1)
	_, err := session.CreateTask(task.TypeSurfaceCollection, home.ID(), tiles)
	require.NoError(t, err)
	clock.Advance(2 * time.Second)
	_, err = session.CompleteActiveTask()
	require.NoError(t, err)

	grid, err := session.Grid(home.ID())
	require.NoError(t, err)
	dug, ok := grid.TileByID(tiles[0])
	require.True(t, ok)
	require.True(t, dug.IsExcavated())

	// surface collection never uncovers structures, the tile is free ground
	require.Equal(t, site.StructureNone, dug.Structure())

	before := session.Player().Money()
	require.NoError(t, session.PlaceCampStructure(home.ID(), tiles[0], "tent"))
	assert.Equal(t, before-100, session.Player().Money())
	assert.Equal(t, site.StructureTent, dug.Structure())

	err = session.PlaceCampStructure(home.ID(), tiles[0], "dig_house")
	assert.Error(t, err, "occupied tile refuses a second structure")
}

func TestSession_InventoryOverflowDropsWithWarning(t *testing.T) {
	cfg := &config.Config{}
	config.SetDefaults(cfg)
	cfg.Rules.InventoryCapacity = 2
	rule := cfg.Rules.Tasks["surface_collection"]
	rule.DiscoveryChanceMin = 1.0
	rule.DiscoveryChanceMax = 1.0
	cfg.Rules.Tasks["surface_collection"] = rule

	clock := shared.NewMockClock(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	session, err := expedition.NewGameSession(&cfg.Rules, shared.NewSeededRand(3), clock)
	require.NoError(t, err)

	require.NoError(t, session.Hire(player.RoleWorker, 1))
	home := homeSite(t, session)
	tiles := topTileIDs(t, session, home.ID(), 9)

	created, err := session.CreateTask(task.TypeSurfaceCollection, home.ID(), tiles)
	require.NoError(t, err)
	clock.Advance(created.Duration())

	result, err := session.CompleteActiveTask()
	require.NoError(t, err)

	// every tile yields a find at full discovery chance, seven do not fit
	require.Len(t, result.Artifacts, 9)
	assert.Len(t, session.Inventory(), 2)

	dropped := 0
	for _, message := range result.Information {
		if strings.Contains(message, "Inventory full") {
			dropped++
			assert.Contains(t, message, "left behind at Tell Abu Salabikh")
		}
	}
	assert.Equal(t, 7, dropped)
}
