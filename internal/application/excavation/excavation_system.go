package excavation

import (
	"fmt"

	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
	"github.com/tellsim/tellsim-go/internal/domain/site"
	"github.com/tellsim/tellsim-go/internal/domain/task"
	"github.com/tellsim/tellsim-go/internal/infrastructure/config"
)

// StructureFind reports a structure uncovered on a tile
type StructureFind struct {
	TileID    string
	Structure site.StructureType
}

// Result carries everything an executed task produced. All tiles are
// snapshots; the caller merges them back into live state by identity.
type Result struct {
	Tiles       []*site.Tile
	Artifacts   []*artifact.Artefact
	Structures  []StructureFind
	Information []string
}

// System executes excavation tasks against tile sets. It is a pure
// transformation: no live collection is touched, randomness comes from the
// injected source.
type System struct {
	rules *config.RulesConfig
	rng   shared.Rand
	clock shared.Clock
}

// NewSystem creates an excavation system.
// Clock and rng are optional - nil defaults to RealClock and an
// unseeded source.
func NewSystem(rules *config.RulesConfig, rng shared.Rand, clock shared.Clock) *System {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	if rng == nil {
		rng = shared.NewRand()
	}
	return &System{rules: rules, rng: rng, clock: clock}
}

// Execute digs every not-yet-excavated tile in the selection, rolling
// discovery per tile. The discovery chance is re-sampled for each tile from
// the task type's range; the resulting variance is intended.
func (s *System) Execute(t *task.Task, digSite *site.Site, tiles []*site.Tile) *Result {
	rule := s.rules.TaskRule(string(t.Type()))
	result := &Result{}

	for _, tile := range tiles {
		if tile.IsExcavated() {
			continue
		}
		if tile.SiteID() != digSite.ID() {
			result.Information = append(result.Information,
				fmt.Sprintf("Tile %s does not belong to %s, skipped", tile.ID(), digSite.Name()))
			continue
		}

		snapshot := tile.Clone()
		snapshot.Excavate()

		chance := shared.FloatBetween(s.rng, rule.DiscoveryChanceMin, rule.DiscoveryChanceMax)
		if s.rng.Float64() < chance {
			found := s.generateArtifact(rule, snapshot.ID(), digSite.Name())
			snapshot.AddArtifact(found.ID())
			result.Artifacts = append(result.Artifacts, found)
			result.Information = append(result.Information,
				fmt.Sprintf("Discovered a %s %s at %s", found.Rarity(), found.Type(), digSite.Name()))
		}

		if structure, ok := s.rollStructure(rule); ok {
			snapshot.SetStructure(structure)
			result.Structures = append(result.Structures, StructureFind{
				TileID:    snapshot.ID(),
				Structure: structure,
			})
			result.Information = append(result.Information,
				fmt.Sprintf("Uncovered a %s at %s", structure, digSite.Name()))
		}

		result.Tiles = append(result.Tiles, snapshot)
	}

	return result
}

// generateArtifact draws (type, rarity) from the task type's loot table and
// samples a base value from the rarity's range
func (s *System) generateArtifact(rule config.TaskRuleConfig, tileID, provenience string) *artifact.Artefact {
	artefactType := artifact.TypeUnidentified
	if len(rule.Loot.Types) > 0 {
		artefactType = artifact.Type(rule.Loot.Types[s.rng.Intn(len(rule.Loot.Types))])
	}

	rarity := s.rollRarity(rule.Loot.RarityWeights)
	valueRange := s.rules.ValueRange(string(rarity))
	baseValue := shared.IntBetween(s.rng, valueRange.Min, valueRange.Max)

	return artifact.NewArtefact(tileID, provenience, artefactType, rarity, baseValue, s.clock)
}

// rollRarity picks from a weighted table; an empty table yields common
func (s *System) rollRarity(weights []config.RarityWeightConfig) artifact.Rarity {
	total := 0
	for _, w := range weights {
		total += w.Weight
	}
	if total <= 0 {
		return artifact.RarityCommon
	}

	roll := s.rng.Intn(total)
	for _, w := range weights {
		roll -= w.Weight
		if roll < 0 {
			return artifact.Rarity(w.Rarity)
		}
	}
	return artifact.Rarity(weights[len(weights)-1].Rarity)
}

// rollStructure performs the independent structure-discovery roll
func (s *System) rollStructure(rule config.TaskRuleConfig) (site.StructureType, bool) {
	if rule.Structures.Chance <= 0 || len(rule.Structures.Candidates) == 0 {
		return site.StructureNone, false
	}
	if s.rng.Float64() >= rule.Structures.Chance {
		return site.StructureNone, false
	}
	pick := rule.Structures.Candidates[s.rng.Intn(len(rule.Structures.Candidates))]
	return site.StructureType(pick), true
}
