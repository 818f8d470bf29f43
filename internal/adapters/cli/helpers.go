package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tellsim/tellsim-go/internal/adapters/persistence"
	"github.com/tellsim/tellsim-go/internal/application/common"
	"github.com/tellsim/tellsim-go/internal/application/expedition"
	"github.com/tellsim/tellsim-go/internal/application/expedition/commands"
	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/site"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
	"github.com/tellsim/tellsim-go/internal/infrastructure/database"
)

// appContext wires the session, mediator and repositories for one CLI run
type appContext struct {
	cfg       *config.Config
	db        *gorm.DB
	session   *expedition.GameSession
	mediator  common.Mediator
	players   player.Repository
	artifacts artifact.Repository
	journal   *persistence.GormJournalRepository
}

// newAppContext builds a session against the configured database, resuming
// the stored player and inventory when they exist
func newAppContext() (*appContext, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	var rng shared.Rand
	if seed != 0 {
		rng = shared.NewSeededRand(seed)
	}
	session, err := expedition.NewGameSession(&cfg.Rules, rng, nil)
	if err != nil {
		return nil, err
	}

	mediator := common.NewMediator()
	if err := commands.RegisterAll(mediator, session); err != nil {
		return nil, err
	}

	app := &appContext{
		cfg:       cfg,
		db:        db,
		session:   session,
		mediator:  mediator,
		players:   persistence.NewGormPlayerRepository(db),
		artifacts: persistence.NewGormArtefactRepository(db),
		journal:   persistence.NewGormJournalRepository(db, nil),
	}

	if err := app.resume(context.Background()); err != nil {
		return nil, err
	}
	return app, nil
}

// resume swaps in the persisted player and inventory from earlier runs
func (a *appContext) resume(ctx context.Context) error {
	stored, err := a.players.FindFirst(ctx)
	if err != nil {
		return err
	}
	if stored != nil {
		a.session.AdoptPlayer(stored)
	}

	inventory, err := a.artifacts.FindInventory(ctx)
	if err != nil {
		return err
	}
	for _, found := range inventory {
		if err := a.session.AddArtifact(found); err != nil {
			break
		}
	}

	displayed, err := a.artifacts.FindExhibited(ctx)
	if err != nil {
		return err
	}
	for _, found := range displayed {
		if err := a.session.Exhibition().Place(found); err != nil {
			break
		}
	}
	return nil
}

// persist saves the player, the current inventory and the museum floor
func (a *appContext) persist(ctx context.Context) error {
	if err := a.players.Save(ctx, a.session.Player()); err != nil {
		return err
	}
	for _, found := range a.session.Inventory() {
		if err := a.artifacts.Save(ctx, found); err != nil {
			return err
		}
	}
	for _, shown := range a.session.Exhibition().Displays() {
		if err := a.artifacts.Save(ctx, shown); err != nil {
			return err
		}
		if err := a.artifacts.MarkExhibited(ctx, shown.ID(), true); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database connection
func (a *appContext) Close() {
	if a.db != nil {
		database.Close(a.db)
	}
}

// notifyingContext returns a context carrying a console-and-journal notifier
func (a *appContext) notifyingContext() context.Context {
	return common.WithNotifier(context.Background(), &journalingNotifier{
		journal:  a.journal,
		minLevel: a.cfg.Logging.Level,
	})
}

// consoleContext returns a context carrying the console notifier only
func consoleContext() context.Context {
	return common.WithNotifier(context.Background(), &consoleNotifier{})
}

// findSiteByName resolves a catalog site by its display name
func findSiteByName(session *expedition.GameSession, name string) (*site.Site, error) {
	return session.SiteByName(name)
}

// pickFreshTopTiles selects up to n unexcavated, interactable tiles
func pickFreshTopTiles(session *expedition.GameSession, siteID string, n int) ([]string, error) {
	grid, err := session.Grid(siteID)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, tile := range grid.Tiles() {
		top, ok := grid.Top(tile.Position())
		if !ok || top.ID() != tile.ID() || tile.IsExcavated() {
			continue
		}
		ids = append(ids, tile.ID())
		if len(ids) == n {
			break
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no unexcavated tiles left at this site")
	}
	return ids, nil
}
