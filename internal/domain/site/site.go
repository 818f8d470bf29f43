package site

import (
	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// Difficulty scales task cost and personnel requirements for a site
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Position is a grid coordinate within a site
type Position struct {
	X int
	Y int
}

// Site represents an archaeological site that can be excavated.
//
// Invariant: excavation can only start on a site that has been discovered.
// Sites are created at game start or when surveyed on the map and are never
// removed during a session.
type Site struct {
	id                string
	name              string
	size              int
	mapLocation       Position
	discovered        bool
	excavationStarted bool
	difficulty        Difficulty
	layers            int
	historicalPeriod  string
	discoveredTileIDs []string
}

// NewSite creates an undiscovered site
func NewSite(name string, size int, mapLocation Position, difficulty Difficulty, layers int, historicalPeriod string) *Site {
	return &Site{
		id:               shared.NewID("site"),
		name:             name,
		size:             size,
		mapLocation:      mapLocation,
		difficulty:       difficulty,
		layers:           layers,
		historicalPeriod: historicalPeriod,
	}
}

func (s *Site) ID() string               { return s.id }
func (s *Site) Name() string             { return s.name }
func (s *Site) Size() int                { return s.size }
func (s *Site) MapLocation() Position    { return s.mapLocation }
func (s *Site) Discovered() bool         { return s.discovered }
func (s *Site) ExcavationStarted() bool  { return s.excavationStarted }
func (s *Site) Difficulty() Difficulty   { return s.difficulty }
func (s *Site) Layers() int              { return s.layers }
func (s *Site) HistoricalPeriod() string { return s.historicalPeriod }

// DiscoveredTiles returns the IDs of tiles excavated so far
func (s *Site) DiscoveredTiles() []string {
	return append([]string(nil), s.discoveredTileIDs...)
}

// Discover marks the site as located on the map
func (s *Site) Discover() {
	s.discovered = true
}

// StartExcavation opens the site's dig grid. Only a discovered site can be
// excavated; calling again after the dig has started is a no-op.
func (s *Site) StartExcavation() error {
	if !s.discovered {
		return shared.NewDomainError("site " + s.name + " has not been discovered yet")
	}
	s.excavationStarted = true
	return nil
}

// AddDiscoveredTile records an excavated tile; duplicates are ignored
func (s *Site) AddDiscoveredTile(tileID string) {
	for _, id := range s.discoveredTileIDs {
		if id == tileID {
			return
		}
	}
	s.discoveredTileIDs = append(s.discoveredTileIDs, tileID)
}

// TotalTiles returns the number of base-layer tiles in the dig grid
func (s *Site) TotalTiles() int {
	return s.size * s.size
}

// DiscoveryProgress returns the excavated fraction of the base grid
func (s *Site) DiscoveryProgress() float64 {
	total := s.TotalTiles()
	if total == 0 {
		return 0
	}
	return float64(len(s.discoveredTileIDs)) / float64(total)
}
