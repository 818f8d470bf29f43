package identification

import (
	"fmt"
	"strings"
	"time"

	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

// unsatisfiable blocks identification of artifacts below the rarity gate
const unsatisfiable = 9999

// Requirements is the personnel and time needed to identify an artifact
type Requirements struct {
	Archaeologists int
	Linguists      int
	Time           time.Duration
}

// Result reports an identification attempt. On success Artefact is an
// identified snapshot the caller must store in place of its copy; on failure
// nothing changed anywhere.
type Result struct {
	Success     bool
	Artefact    *artifact.Artefact
	Bonuses     []artifact.Bonus
	Information string
}

// System identifies artifacts: it validates personnel sufficiency, fills in
// the descriptive attributes from the type catalog and revalues the piece
type System struct {
	rules *config.RulesConfig
	rng   shared.Rand
}

// NewSystem creates an identification system.
// The rng parameter is optional - nil defaults to an unseeded source.
func NewSystem(rules *config.RulesConfig, rng shared.Rand) *System {
	if rng == nil {
		rng = shared.NewRand()
	}
	return &System{rules: rules, rng: rng}
}

// RequirementsFor looks up personnel requirements by artifact type. Basic
// finds take one archaeologist, inscribed ones add a linguist, complex ones
// take two archaeologists. Artifacts below the configured rarity gate get an
// unsatisfiable requirement.
func (s *System) RequirementsFor(a *artifact.Artefact) Requirements {
	if minRarity := s.rules.Identification.MinRarity; minRarity != "" {
		if !a.Rarity().AtLeast(artifact.Rarity(minRarity)) {
			return Requirements{Archaeologists: unsatisfiable, Linguists: unsatisfiable}
		}
	}

	switch a.Type() {
	case artifact.TypeCuneiformTablet, artifact.TypeStampedBrick, artifact.TypeCylinderSeal:
		return Requirements{Archaeologists: 1, Linguists: 1, Time: 2 * time.Second}
	case artifact.TypeStatue, artifact.TypeJewelry:
		return Requirements{Archaeologists: 2, Time: 3 * time.Second}
	default:
		return Requirements{Archaeologists: 1, Time: time.Second}
	}
}

// CanIdentify compares available personnel against the artifact's
// requirements
func (s *System) CanIdentify(a *artifact.Artefact, archaeologists, linguists int) (bool, Requirements) {
	req := s.RequirementsFor(a)
	ok := archaeologists >= req.Archaeologists && linguists >= req.Linguists
	return ok, req
}

// Identify transforms an unidentified artifact into an identified snapshot
// with catalog attributes, a revalued price and any inscription bonuses.
// Personnel are checked but not consumed.
func (s *System) Identify(a *artifact.Artefact, archaeologists, linguists int) *Result {
	if a.Identified() {
		return &Result{
			Artefact:    a,
			Bonuses:     a.Bonuses(),
			Information: "Already identified",
		}
	}

	ok, _ := s.CanIdentify(a, archaeologists, linguists)
	if !ok {
		return &Result{Information: "Insufficient personnel"}
	}

	attrs := artifact.CatalogAttributes(a.Type())
	multiplier := shared.FloatBetween(s.rng,
		s.rules.Identification.MultiplierMin, s.rules.Identification.MultiplierMax)

	identified := a.Clone()
	identified.Identify(attrs.Name, attrs.Style, attrs.Material, attrs.Age, attrs.Inscription, multiplier)

	bonuses := inscriptionBonuses(attrs.Inscription)
	for _, bonus := range bonuses {
		identified.AddBonus(bonus)
	}

	if set := setMembership(a.Type(), attrs); set != "" {
		identified.AssignSet(set)
	}

	return &Result{
		Success:     true,
		Artefact:    identified,
		Bonuses:     bonuses,
		Information: fmt.Sprintf("Successfully identified as %s", attrs.Name),
	}
}

// inscriptionBonuses derives value bonuses from the inscription text.
// Matching is case-insensitive.
func inscriptionBonuses(inscription string) []artifact.Bonus {
	if inscription == "" {
		return nil
	}
	text := strings.ToLower(inscription)
	var bonuses []artifact.Bonus
	if strings.Contains(text, "ruler") || strings.Contains(text, "king") {
		bonuses = append(bonuses, artifact.Bonus{Type: "Mentioning ruler", Value: 2})
	}
	if strings.Contains(text, "place") || strings.Contains(text, "city") {
		bonuses = append(bonuses, artifact.Bonus{Type: "Mentioning place name", Value: 1})
	}
	return bonuses
}

// setMembership tags known collections, e.g. gold pieces from the Ur III
// period
func setMembership(t artifact.Type, attrs artifact.Attributes) string {
	if t == artifact.TypeJewelry && attrs.Age == "Ur III" {
		return "The Local Chief"
	}
	return ""
}
