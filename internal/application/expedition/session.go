package expedition

import (
	"fmt"

	"github.com/tellsim/tellsim-go/internal/application/excavation"
	"github.com/tellsim/tellsim-go/internal/application/identification"
	"github.com/tellsim/tellsim-go/internal/application/museum"
	"github.com/tellsim/tellsim-go/internal/application/resources"
	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/player"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/site"
	"github.com/tellsim/tellsim-go/internal/domain/task"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

// GameSession owns all live expedition state and coordinates the task
// lifecycle: validate → debit → reserve → run → merge results → release.
//
// One task may be in progress at a time. Excavation results are applied
// atomically from the caller's perspective: either the full tile/artifact
// merge happens or, on validation failure, nothing does.
type GameSession struct {
	rules *config.RulesConfig
	clock shared.Clock
	rng   shared.Rand

	player     *player.Player
	sites      map[string]*site.Site
	grids      map[string]*site.DigGrid
	tasks      map[string]*task.Task
	inventory  []*artifact.Artefact
	exhibition *museum.Exhibition

	resources  *resources.Manager
	excavator  *excavation.System
	identifier *identification.System
}

// NewGameSession bootstraps a fresh expedition: the player funded with the
// starting balance, the bootstrap site already discovered with its dig grid
// open, and the catalog sites placed on the map undiscovered.
// Clock and rng are optional - nil defaults to RealClock and a time-seeded
// source.
func NewGameSession(rules *config.RulesConfig, rng shared.Rand, clock shared.Clock) (*GameSession, error) {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if rng == nil {
		rng = shared.NewRand()
	}

	s := &GameSession{
		rules:      rules,
		clock:      clock,
		rng:        rng,
		player:     player.NewPlayer(rules.StartingMoney),
		sites:      make(map[string]*site.Site),
		grids:      make(map[string]*site.DigGrid),
		tasks:      make(map[string]*task.Task),
		exhibition: museum.NewExhibition(rules.ExhibitionCapacity),
		resources:  resources.NewManager(rules),
		excavator:  excavation.NewSystem(rules, rng, clock),
		identifier: identification.NewSystem(rules, rng),
	}

	home := s.addCatalogSite(rules.BootstrapSite)
	home.Discover()
	if err := home.StartExcavation(); err != nil {
		return nil, err
	}
	s.grids[home.ID()] = site.GenerateGrid(home, clock)
	s.player.DiscoverSite(home.ID())

	for _, sc := range rules.MapSites {
		s.addCatalogSite(sc)
	}

	return s, nil
}

func (s *GameSession) addCatalogSite(sc config.SiteConfig) *site.Site {
	created := site.NewSite(sc.Name, sc.Size, site.Position{X: sc.X, Y: sc.Y},
		site.Difficulty(sc.Difficulty), sc.Layers, sc.Period)
	s.sites[created.ID()] = created
	return created
}

// Player returns the live player aggregate
func (s *GameSession) Player() *player.Player { return s.player }

// AdoptPlayer swaps in a player restored from persistence, keeping the
// session's bootstrap sites. Dig grids are session-scoped and regenerate
// each run.
func (s *GameSession) AdoptPlayer(p *player.Player) {
	s.player = p
}

// Exhibition returns the museum floor
func (s *GameSession) Exhibition() *museum.Exhibition { return s.exhibition }

// Sites returns every catalog site, discovered or not
func (s *GameSession) Sites() []*site.Site {
	all := make([]*site.Site, 0, len(s.sites))
	for _, st := range s.sites {
		all = append(all, st)
	}
	return all
}

// Site finds a site by ID
func (s *GameSession) Site(siteID string) (*site.Site, error) {
	st, ok := s.sites[siteID]
	if !ok {
		return nil, shared.NewNotFoundError("site", siteID)
	}
	return st, nil
}

// SiteByName finds a site by its catalog name
func (s *GameSession) SiteByName(name string) (*site.Site, error) {
	for _, st := range s.sites {
		if st.Name() == name {
			return st, nil
		}
	}
	return nil, shared.NewNotFoundError("site", name)
}

// Grid returns the dig grid of a site whose excavation has started
func (s *GameSession) Grid(siteID string) (*site.DigGrid, error) {
	grid, ok := s.grids[siteID]
	if !ok {
		return nil, shared.NewNotFoundError("dig grid for site", siteID)
	}
	return grid, nil
}

// Inventory returns the artifact collection in discovery order
func (s *GameSession) Inventory() []*artifact.Artefact {
	return append([]*artifact.Artefact(nil), s.inventory...)
}

// Artifact finds an inventory artifact by ID
func (s *GameSession) Artifact(artifactID string) (*artifact.Artefact, error) {
	for _, a := range s.inventory {
		if a.ID() == artifactID {
			return a, nil
		}
	}
	return nil, shared.NewNotFoundError("artifact", artifactID)
}

// ActiveTask returns the in-progress task, nil if none
func (s *GameSession) ActiveTask() *task.Task {
	id := s.player.ActiveTask()
	if id == "" {
		return nil
	}
	return s.tasks[id]
}

// TaskProgress returns the active task's elapsed fraction, 0 if idle
func (s *GameSession) TaskProgress() float64 {
	active := s.ActiveTask()
	if active == nil {
		return 0
	}
	return active.Progress()
}

// Hire adds personnel of a role at the configured per-unit cost
func (s *GameSession) Hire(role player.Role, count int) error {
	var costPerUnit int
	switch role {
	case player.RoleWorker:
		costPerUnit = s.rules.PersonnelCosts.Worker
	case player.RoleArchaeologist:
		costPerUnit = s.rules.PersonnelCosts.Archaeologist
	case player.RoleLinguist:
		costPerUnit = s.rules.PersonnelCosts.Linguist
	default:
		return shared.NewValidationError("role", "unknown role "+string(role))
	}
	return s.player.Hire(role, count, costPerUnit)
}

// SurveySite pays the survey cost to locate an undiscovered site, opening
// its dig grid. On insufficient funds nothing changes.
func (s *GameSession) SurveySite(siteID string) error {
	st, err := s.Site(siteID)
	if err != nil {
		return err
	}
	if st.Discovered() {
		return shared.NewDomainError("site " + st.Name() + " is already discovered")
	}
	if err := s.player.SpendMoney(s.rules.SurveyCost); err != nil {
		return err
	}
	st.Discover()
	if err := st.StartExcavation(); err != nil {
		return err
	}
	s.grids[st.ID()] = site.GenerateGrid(st, s.clock)
	s.player.DiscoverSite(st.ID())
	return nil
}

// CreateTask validates a task against the player's resources, debits its
// cost, reserves its crew and starts it running. Tiles must be interactable
// top-layer tiles of the given site.
func (s *GameSession) CreateTask(taskType task.Type, siteID string, tileIDs []string) (*task.Task, error) {
	if s.ActiveTask() != nil {
		return nil, shared.NewDomainError("another task is already in progress")
	}

	st, err := s.Site(siteID)
	if err != nil {
		return nil, err
	}
	if !st.ExcavationStarted() {
		return nil, shared.NewDomainError("excavation has not started at " + st.Name())
	}
	grid, err := s.Grid(siteID)
	if err != nil {
		return nil, err
	}
	if len(tileIDs) == 0 {
		return nil, shared.NewValidationError("tiles", "select at least one tile")
	}
	for _, tileID := range tileIDs {
		tile, ok := grid.TileByID(tileID)
		if !ok {
			return nil, shared.NewNotFoundError("tile", tileID)
		}
		if top, ok := grid.Top(tile.Position()); !ok || top.ID() != tileID {
			return nil, shared.NewValidationError("tiles", "tile "+tileID+" is buried under a later layer")
		}
	}

	req := s.resources.Calculate(taskType, string(st.Difficulty()))
	if err := s.resources.Allocate(s.player, req); err != nil {
		return nil, err
	}

	rule := s.rules.TaskRule(string(taskType))
	created := task.NewTask(taskType, s.player.ID(), req.Crew, req.Cost, rule.Duration, s.clock)
	created.AddSite(siteID)
	for _, tileID := range tileIDs {
		created.AddTile(tileID)
	}

	if err := s.player.AssignTask(created.ID()); err != nil {
		s.player.AddMoney(req.Cost)
		s.player.Release(req.Crew)
		return nil, err
	}

	s.tasks[created.ID()] = created
	created.Start()
	return created, nil
}

// CancelActiveTask abandons the running task, releasing its crew. Money is
// not refunded.
func (s *GameSession) CancelActiveTask() error {
	active := s.ActiveTask()
	if active == nil {
		return shared.NewDomainError("no task is in progress")
	}
	if err := active.Cancel(); err != nil {
		return err
	}
	s.player.Release(active.Crew())
	s.player.ClearTask(active.ID())
	return nil
}

// CompleteActiveTask finishes a due task: the excavation system runs against
// the task's tiles and its results are merged back into live state. Crew is
// released and the artifacts join the inventory, dropping overflow beyond
// capacity with a warning in the result's information.
func (s *GameSession) CompleteActiveTask() (*excavation.Result, error) {
	active := s.ActiveTask()
	if active == nil {
		return nil, shared.NewDomainError("no task is in progress")
	}
	if !active.IsDue() {
		return nil, shared.NewDomainError(fmt.Sprintf("task is still running (%.0f%%)", active.Progress()*100))
	}

	siteIDs := active.Sites()
	if len(siteIDs) == 0 {
		return nil, shared.NewDomainError("task has no target site")
	}
	st, err := s.Site(siteIDs[0])
	if err != nil {
		return nil, err
	}
	grid, err := s.Grid(st.ID())
	if err != nil {
		return nil, err
	}

	tiles := make([]*site.Tile, 0, len(active.Tiles()))
	for _, tileID := range active.Tiles() {
		if tile, ok := grid.TileByID(tileID); ok {
			tiles = append(tiles, tile)
		}
	}

	result := s.excavator.Execute(active, st, tiles)
	s.mergeResult(st, grid, result)

	s.player.Release(active.Crew())
	active.Complete()
	s.player.ClearTask(active.ID())
	return result, nil
}

// mergeResult copies excavation snapshots back into live state by identity
func (s *GameSession) mergeResult(st *site.Site, grid *site.DigGrid, result *excavation.Result) {
	for _, snapshot := range result.Tiles {
		live, ok := grid.TileByID(snapshot.ID())
		if !ok {
			continue
		}
		live.Excavate()
		if snapshot.Structure() != site.StructureNone {
			live.SetStructure(snapshot.Structure())
		}
		for _, artifactID := range snapshot.Artifacts() {
			live.AddArtifact(artifactID)
		}
		st.AddDiscoveredTile(live.ID())
	}

	kept := make([]*artifact.Artefact, 0, len(result.Artifacts))
	for _, found := range result.Artifacts {
		if len(s.inventory)+len(kept) >= s.rules.InventoryCapacity {
			result.Information = append(result.Information,
				fmt.Sprintf("Inventory full, %s left behind at %s", found.Type(), st.Name()))
			continue
		}
		kept = append(kept, found)
	}
	s.inventory = append(s.inventory, kept...)
}

// AddArtifact places an artifact directly into the inventory, refusing once
// capacity is reached. Restored saves and acquisitions outside excavation go
// through here.
func (s *GameSession) AddArtifact(a *artifact.Artefact) error {
	if len(s.inventory) >= s.rules.InventoryCapacity {
		return shared.NewCapacityError("inventory", s.rules.InventoryCapacity)
	}
	s.inventory = append(s.inventory, a)
	return nil
}

// IdentifyArtifact runs the identification system against an inventory
// artifact, replacing the stored copy with the identified snapshot
func (s *GameSession) IdentifyArtifact(artifactID string) (*identification.Result, error) {
	_, err := s.Artifact(artifactID)
	if err != nil {
		return nil, err
	}

	available := s.player.Available()
	for i, a := range s.inventory {
		if a.ID() != artifactID {
			continue
		}
		result := s.identifier.Identify(a, available.Archaeologists, available.Linguists)
		if result.Success {
			s.inventory[i] = result.Artefact
		}
		return result, nil
	}
	return nil, shared.NewNotFoundError("artifact", artifactID)
}

// SellArtifact credits the artifact's value and removes it from the
// inventory by identity
func (s *GameSession) SellArtifact(artifactID string) (int, error) {
	for i, a := range s.inventory {
		if a.ID() != artifactID {
			continue
		}
		s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
		s.player.AddMoney(a.Value())
		return a.Value(), nil
	}
	return 0, shared.NewNotFoundError("artifact", artifactID)
}

// ExhibitArtifact moves an inventory artifact onto the museum floor
func (s *GameSession) ExhibitArtifact(artifactID string) error {
	for i, a := range s.inventory {
		if a.ID() != artifactID {
			continue
		}
		if err := s.exhibition.Place(a); err != nil {
			return err
		}
		s.inventory = append(s.inventory[:i], s.inventory[i+1:]...)
		return nil
	}
	return shared.NewNotFoundError("artifact", artifactID)
}

// RetireExhibit takes an artifact off display and back into the inventory
func (s *GameSession) RetireExhibit(artifactID string) error {
	if len(s.inventory) >= s.rules.InventoryCapacity {
		return shared.NewCapacityError("inventory", s.rules.InventoryCapacity)
	}
	retired, err := s.exhibition.Remove(artifactID)
	if err != nil {
		return err
	}
	s.inventory = append(s.inventory, retired)
	return nil
}

// PlaceCampStructure builds a camp structure on an excavated, empty tile of
// a discovered site, debiting its configured cost
func (s *GameSession) PlaceCampStructure(siteID, tileID, structure string) error {
	cost, ok := s.rules.CampStructures[structure]
	if !ok {
		return shared.NewValidationError("structure", "unknown camp structure "+structure)
	}
	grid, err := s.Grid(siteID)
	if err != nil {
		return err
	}
	tile, ok := grid.TileByID(tileID)
	if !ok {
		return shared.NewNotFoundError("tile", tileID)
	}
	if !tile.IsExcavated() {
		return shared.NewDomainError("camp structures need excavated ground")
	}
	if tile.Structure() != site.StructureNone {
		return shared.NewDomainError("tile already holds a " + string(tile.Structure()))
	}
	if err := s.player.SpendMoney(cost); err != nil {
		return err
	}
	tile.SetStructure(site.StructureType(structure))
	return nil
}
