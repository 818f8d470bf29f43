package artifact

import (
	"time"

	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

// RestoreState carries everything needed to rebuild an artifact from
// persisted data
type RestoreState struct {
	ID           string
	Name         string
	Type         Type
	Rarity       Rarity
	Value        int
	Identified   bool
	TileID       string
	Provenience  string
	Style        string
	Material     string
	Age          string
	Inscription  string
	SetName      string
	Bonuses      []Bonus
	DiscoveredAt time.Time
	IdentifiedAt *time.Time
}

// Restore reconstructs an artifact from persisted state.
// This should only be used by repositories, not during normal operation.
func Restore(state RestoreState) *Artefact {
	a := &Artefact{
		id:           state.ID,
		name:         state.Name,
		artefactType: state.Type,
		rarity:       state.Rarity,
		value:        state.Value,
		identified:   state.Identified,
		tileID:       state.TileID,
		provenience:  state.Provenience,
		style:        state.Style,
		material:     state.Material,
		age:          state.Age,
		inscription:  state.Inscription,
		setName:      state.SetName,
		bonuses:      append([]Bonus(nil), state.Bonuses...),
		discoveredAt: state.DiscoveredAt,
		clock:        shared.NewRealClock(),
	}
	if state.IdentifiedAt != nil {
		ts := *state.IdentifiedAt
		a.identifiedAt = &ts
	}
	return a
}
