package site

import (
	"time"

	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// StructureType identifies what stands (or was uncovered) on a tile
type StructureType string

const (
	StructureNone     StructureType = "none"
	StructureWall     StructureType = "wall"
	StructureFloor    StructureType = "floor"
	StructurePit      StructureType = "pit"
	StructureBurial   StructureType = "burial"
	StructureBuilding StructureType = "building"
	StructureTemple   StructureType = "temple"
	StructurePalace   StructureType = "palace"

	// Camp structures the player can place on excavated ground
	StructureTent     StructureType = "tent"
	StructureDigHouse StructureType = "dig_house"
)

// Tile represents an individual excavation unit within a site.
//
// A position may hold several tiles stacked by layer; only the tile at the
// greatest layer for a position is interactable, lower layers are inert
// history. Once excavated a tile never reverts.
type Tile struct {
	id          string
	siteID      string
	position    Position
	layer       int
	structure   StructureType
	excavated   bool
	artifactIDs []string
	excavatedAt *time.Time
	clock       shared.Clock
}

// NewTile creates an unexcavated tile.
// The clock parameter is optional - if nil, defaults to RealClock.
func NewTile(siteID string, position Position, layer int, clock shared.Clock) *Tile {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Tile{
		id:        shared.NewID("tile"),
		siteID:    siteID,
		position:  position,
		layer:     layer,
		structure: StructureNone,
		clock:     clock,
	}
}

func (t *Tile) ID() string               { return t.id }
func (t *Tile) SiteID() string           { return t.siteID }
func (t *Tile) Position() Position       { return t.position }
func (t *Tile) Layer() int               { return t.layer }
func (t *Tile) Structure() StructureType { return t.structure }
func (t *Tile) IsExcavated() bool        { return t.excavated }

// ExcavatedAt returns when the tile was excavated (nil if untouched)
func (t *Tile) ExcavatedAt() *time.Time { return t.excavatedAt }

// Artifacts returns the IDs of artifacts found in this tile
func (t *Tile) Artifacts() []string {
	return append([]string(nil), t.artifactIDs...)
}

// Excavate marks the tile as dug. Excavating an excavated tile is a silent
// no-op; the excavated flag is monotonic.
func (t *Tile) Excavate() {
	if t.excavated {
		return
	}
	t.excavated = true
	now := t.clock.Now()
	t.excavatedAt = &now
}

// AddArtifact links a discovered artifact to the tile; duplicates are ignored
func (t *Tile) AddArtifact(artifactID string) {
	for _, id := range t.artifactIDs {
		if id == artifactID {
			return
		}
	}
	t.artifactIDs = append(t.artifactIDs, artifactID)
}

// RemoveArtifact unlinks an artifact from the tile
func (t *Tile) RemoveArtifact(artifactID string) {
	kept := t.artifactIDs[:0]
	for _, id := range t.artifactIDs {
		if id != artifactID {
			kept = append(kept, id)
		}
	}
	t.artifactIDs = kept
}

// SetStructure records a structure on the tile
func (t *Tile) SetStructure(structure StructureType) {
	t.structure = structure
}

// Clone returns a deep copy carrying the same identity. Used by the
// excavation system to work on snapshots without touching live state.
func (t *Tile) Clone() *Tile {
	copied := *t
	copied.artifactIDs = append([]string(nil), t.artifactIDs...)
	if t.excavatedAt != nil {
		ts := *t.excavatedAt
		copied.excavatedAt = &ts
	}
	return &copied
}
