package artifact

import (
	"math"
	"time"

	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

const unknownField = "Unknown"

// Bonus is a value modifier earned during identification, e.g. an
// inscription mentioning a ruler
type Bonus struct {
	Type  string
	Value int
}

// Artefact represents a discovered item from an excavation.
//
// While unidentified, the descriptive fields hold "Unknown" sentinels and
// the value reflects only the base-rarity roll. Identification fixes the
// descriptive fields permanently and never decreases the value;
// re-identification is a no-op.
type Artefact struct {
	id           string
	name         string
	artefactType Type
	rarity       Rarity
	value        int
	identified   bool
	tileID       string
	provenience  string
	style        string
	material     string
	age          string
	inscription  string
	setName      string
	bonuses      []Bonus
	discoveredAt time.Time
	identifiedAt *time.Time
	clock        shared.Clock
}

// NewArtefact creates an unidentified artifact the instant a discovery roll
// succeeds. The base value is sampled by the caller from the rarity's range.
// The clock parameter is optional - if nil, defaults to RealClock.
func NewArtefact(tileID, provenience string, artefactType Type, rarity Rarity, baseValue int, clock shared.Clock) *Artefact {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &Artefact{
		id:           shared.NewID("artefact"),
		name:         "Artifact (Unidentified)",
		artefactType: artefactType,
		rarity:       rarity,
		value:        baseValue,
		tileID:       tileID,
		provenience:  provenience,
		style:        unknownField,
		material:     unknownField,
		age:          unknownField,
		discoveredAt: clock.Now(),
		clock:        clock,
	}
}

func (a *Artefact) ID() string          { return a.id }
func (a *Artefact) Name() string        { return a.name }
func (a *Artefact) Type() Type          { return a.artefactType }
func (a *Artefact) Rarity() Rarity      { return a.rarity }
func (a *Artefact) Value() int          { return a.value }
func (a *Artefact) Identified() bool    { return a.identified }
func (a *Artefact) TileID() string      { return a.tileID }
func (a *Artefact) Provenience() string { return a.provenience }
func (a *Artefact) Style() string       { return a.style }
func (a *Artefact) Material() string    { return a.material }
func (a *Artefact) Age() string         { return a.age }

// Inscription returns the deciphered inscription, empty if none
func (a *Artefact) Inscription() string { return a.inscription }

// SetName returns the collection this piece belongs to, empty if none
func (a *Artefact) SetName() string { return a.setName }

func (a *Artefact) DiscoveredAt() time.Time  { return a.discoveredAt }
func (a *Artefact) IdentifiedAt() *time.Time { return a.identifiedAt }

// Bonuses returns the modifiers applied during identification
func (a *Artefact) Bonuses() []Bonus {
	return append([]Bonus(nil), a.bonuses...)
}

// Identify reveals the artifact's true attributes and revalues it by the
// given multiplier. A second call is a silent no-op: the descriptive fields
// are permanently fixed once set.
func (a *Artefact) Identify(name, style, material, age, inscription string, multiplier float64) {
	if a.identified {
		return
	}
	a.identified = true
	a.name = name
	a.style = style
	a.material = material
	a.age = age
	a.inscription = inscription
	now := a.clock.Now()
	a.identifiedAt = &now
	a.value = int(math.Floor(float64(a.value) * multiplier))
}

// AddBonus records a bonus and applies it to the value: +10% of the current
// value per bonus point
func (a *Artefact) AddBonus(bonus Bonus) {
	a.bonuses = append(a.bonuses, bonus)
	a.value = int(math.Floor(float64(a.value) * (1 + float64(bonus.Value)*0.1)))
}

// AssignSet tags the artifact as part of a named set (pure metadata)
func (a *Artefact) AssignSet(setName string) {
	a.setName = setName
}

// Clone returns a deep copy carrying the same identity, used for exhibition
// display snapshots
func (a *Artefact) Clone() *Artefact {
	copied := *a
	copied.bonuses = append([]Bonus(nil), a.bonuses...)
	if a.identifiedAt != nil {
		ts := *a.identifiedAt
		copied.identifiedAt = &ts
	}
	return &copied
}
