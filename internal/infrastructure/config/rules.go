package config

import "time"

// RulesConfig hoists every game-rule magic number into one externally
// loadable structure. The defaults follow the extended ruleset; the earlier
// prototype's numbers are reachable by configuration alone.
type RulesConfig struct {
	StartingMoney int `mapstructure:"starting_money" validate:"min=0"`

	// Per-unit hire cost, which doubles as the wage used when scaling
	// task costs
	PersonnelCosts PersonnelCostsConfig `mapstructure:"personnel_costs"`

	// Task-type rule tables keyed by task type name
	Tasks map[string]TaskRuleConfig `mapstructure:"tasks"`

	// Difficulty name → requirement/cost multiplier
	DifficultyMultipliers map[string]float64 `mapstructure:"difficulty_multipliers"`

	// Rarity name → base value range in dollars
	ValueRanges map[string]ValueRangeConfig `mapstructure:"value_ranges"`

	Identification IdentificationConfig `mapstructure:"identification"`

	InventoryCapacity  int `mapstructure:"inventory_capacity" validate:"min=1"`
	ExhibitionCapacity int `mapstructure:"exhibition_capacity" validate:"min=1"`

	// Cost of surveying an undiscovered map site
	SurveyCost int `mapstructure:"survey_cost" validate:"min=0"`

	// Placeable camp structure name → cost
	CampStructures map[string]int `mapstructure:"camp_structures"`

	BootstrapSite SiteConfig   `mapstructure:"bootstrap_site"`
	MapSites      []SiteConfig `mapstructure:"map_sites"`
}

// PersonnelCostsConfig holds per-unit dollar costs by role
type PersonnelCostsConfig struct {
	Worker        int `mapstructure:"worker" validate:"min=0"`
	Archaeologist int `mapstructure:"archaeologist" validate:"min=0"`
	Linguist      int `mapstructure:"linguist" validate:"min=0"`
}

// TaskRuleConfig holds every rule governed by the task type
type TaskRuleConfig struct {
	// Base personnel allocation before difficulty scaling
	Workers        int `mapstructure:"workers" validate:"min=0"`
	Archaeologists int `mapstructure:"archaeologists" validate:"min=0"`
	Linguists      int `mapstructure:"linguists" validate:"min=0"`

	BaseCost int           `mapstructure:"base_cost" validate:"min=0"`
	Duration time.Duration `mapstructure:"duration"`

	// Discovery chance is re-sampled per tile, uniform in [Min, Max)
	DiscoveryChanceMin float64 `mapstructure:"discovery_chance_min" validate:"min=0,max=1"`
	DiscoveryChanceMax float64 `mapstructure:"discovery_chance_max" validate:"min=0,max=1"`

	Loot       LootConfig          `mapstructure:"loot"`
	Structures StructureRollConfig `mapstructure:"structures"`
}

// LootConfig drives the artifact draw on a successful discovery roll:
// type uniform among Types, rarity weighted by RarityWeights
type LootConfig struct {
	Types         []string             `mapstructure:"types"`
	RarityWeights []RarityWeightConfig `mapstructure:"rarity_weights"`
}

// RarityWeightConfig is one entry of a weighted rarity table
type RarityWeightConfig struct {
	Rarity string `mapstructure:"rarity"`
	Weight int    `mapstructure:"weight" validate:"min=0"`
}

// StructureRollConfig drives the independent structure-discovery roll
type StructureRollConfig struct {
	Chance     float64  `mapstructure:"chance" validate:"min=0,max=1"`
	Candidates []string `mapstructure:"candidates"`
}

// ValueRangeConfig is an inclusive dollar range
type ValueRangeConfig struct {
	Min int `mapstructure:"min" validate:"min=0"`
	Max int `mapstructure:"max" validate:"min=0"`
}

// IdentificationConfig governs revaluation and eligibility
type IdentificationConfig struct {
	// Revaluation multiplier, uniform in [Min, Max)
	MultiplierMin float64 `mapstructure:"multiplier_min" validate:"min=1"`
	MultiplierMax float64 `mapstructure:"multiplier_max" validate:"min=1"`

	// Lowest rarity tier that may ever be identified; empty disables the
	// gate (the prototype ruleset)
	MinRarity string `mapstructure:"min_rarity"`
}

// SiteConfig describes a catalog site
type SiteConfig struct {
	Name       string `mapstructure:"name" validate:"required"`
	Size       int    `mapstructure:"size" validate:"min=1"`
	Difficulty string `mapstructure:"difficulty"`
	Layers     int    `mapstructure:"layers" validate:"min=1"`
	Period     string `mapstructure:"period"`
	X          int    `mapstructure:"x"`
	Y          int    `mapstructure:"y"`
}

// TaskRule returns the rule table for a task type, falling back to the
// surface collection tier for unrecognized types
func (r *RulesConfig) TaskRule(taskType string) TaskRuleConfig {
	if rule, ok := r.Tasks[taskType]; ok {
		return rule
	}
	return r.Tasks["surface_collection"]
}

// DifficultyMultiplier returns the multiplier for a difficulty name,
// defaulting to 1.0 for unrecognized difficulties
func (r *RulesConfig) DifficultyMultiplier(difficulty string) float64 {
	if m, ok := r.DifficultyMultipliers[difficulty]; ok {
		return m
	}
	return 1.0
}

// ValueRange returns the base value range for a rarity name, with a
// minimal fallback for unrecognized rarities
func (r *RulesConfig) ValueRange(rarity string) ValueRangeConfig {
	if vr, ok := r.ValueRanges[rarity]; ok {
		return vr
	}
	return ValueRangeConfig{Min: 10, Max: 10}
}
