package config

import "time"

// SetDefaults sets default values for all configuration fields.
// Rule defaults follow the extended ruleset.
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "tellsim.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "tellsim"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "tellsim"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	setRuleDefaults(&cfg.Rules)
}

func setRuleDefaults(rules *RulesConfig) {
	if rules.StartingMoney == 0 {
		rules.StartingMoney = 1000
	}
	if rules.PersonnelCosts.Worker == 0 {
		rules.PersonnelCosts.Worker = 50
	}
	if rules.PersonnelCosts.Archaeologist == 0 {
		rules.PersonnelCosts.Archaeologist = 200
	}
	if rules.PersonnelCosts.Linguist == 0 {
		rules.PersonnelCosts.Linguist = 500
	}

	if rules.Tasks == nil {
		rules.Tasks = map[string]TaskRuleConfig{
			"surface_collection": {
				Workers:            1,
				BaseCost:           50,
				Duration:           2 * time.Second,
				DiscoveryChanceMin: 0.30,
				DiscoveryChanceMax: 0.50,
				Loot: LootConfig{
					Types: []string{"pottery", "tool", "stamped_brick"},
					RarityWeights: []RarityWeightConfig{
						{Rarity: "common", Weight: 75},
						{Rarity: "uncommon", Weight: 25},
					},
				},
			},
			"excavation": {
				Workers:            3,
				Archaeologists:     1,
				BaseCost:           250,
				Duration:           5 * time.Second,
				DiscoveryChanceMin: 0.60,
				DiscoveryChanceMax: 0.80,
				Loot: LootConfig{
					Types: []string{
						"pottery", "stamped_brick", "cuneiform_tablet", "cylinder_seal",
						"tool", "jewelry", "statue", "weapon",
					},
					RarityWeights: []RarityWeightConfig{
						{Rarity: "common", Weight: 30},
						{Rarity: "uncommon", Weight: 25},
						{Rarity: "rare", Weight: 30},
						{Rarity: "very_rare", Weight: 10},
						{Rarity: "legendary", Weight: 5},
					},
				},
				Structures: StructureRollConfig{
					Chance:     0.20,
					Candidates: []string{"wall", "floor"},
				},
			},
			"trench": {
				Workers:            5,
				Archaeologists:     2,
				Linguists:          1,
				BaseCost:           2000,
				Duration:           8 * time.Second,
				DiscoveryChanceMin: 0.80,
				DiscoveryChanceMax: 0.95,
				Loot: LootConfig{
					Types: []string{"cuneiform_tablet", "cylinder_seal", "jewelry", "statue"},
					RarityWeights: []RarityWeightConfig{
						{Rarity: "uncommon", Weight: 25},
						{Rarity: "rare", Weight: 50},
						{Rarity: "very_rare", Weight: 15},
						{Rarity: "legendary", Weight: 10},
					},
				},
				Structures: StructureRollConfig{
					Chance:     0.40,
					Candidates: []string{"wall", "floor", "building", "temple", "palace"},
				},
			},
		}
	}

	if rules.DifficultyMultipliers == nil {
		rules.DifficultyMultipliers = map[string]float64{
			"easy":   0.8,
			"medium": 1.0,
			"hard":   1.5,
			"expert": 2.0,
		}
	}

	if rules.ValueRanges == nil {
		rules.ValueRanges = map[string]ValueRangeConfig{
			"common":    {Min: 10, Max: 50},
			"uncommon":  {Min: 50, Max: 150},
			"rare":      {Min: 200, Max: 500},
			"very_rare": {Min: 800, Max: 2000},
			"legendary": {Min: 3000, Max: 8000},
		}
	}

	if rules.Identification.MultiplierMin == 0 {
		rules.Identification.MultiplierMin = 1.5
	}
	if rules.Identification.MultiplierMax == 0 {
		rules.Identification.MultiplierMax = 2.0
	}
	if rules.Identification.MinRarity == "" {
		rules.Identification.MinRarity = "rare"
	}

	if rules.InventoryCapacity == 0 {
		rules.InventoryCapacity = 20
	}
	if rules.ExhibitionCapacity == 0 {
		rules.ExhibitionCapacity = 12
	}
	if rules.SurveyCost == 0 {
		rules.SurveyCost = 300
	}
	if rules.CampStructures == nil {
		rules.CampStructures = map[string]int{
			"tent":      100,
			"dig_house": 400,
		}
	}

	if rules.BootstrapSite.Name == "" {
		rules.BootstrapSite = SiteConfig{
			Name:       "Tell Abu Salabikh",
			Size:       3,
			Difficulty: "medium",
			Layers:     4,
			Period:     "Ur III",
			X:          45,
			Y:          40,
		}
	}
	if rules.MapSites == nil {
		rules.MapSites = []SiteConfig{
			{Name: "Nippur", Size: 3, Difficulty: "medium", Layers: 3, Period: "Old Babylonian", X: 60, Y: 50},
			{Name: "Ur", Size: 3, Difficulty: "hard", Layers: 4, Period: "Ur III", X: 30, Y: 35},
			{Name: "Babylon", Size: 5, Difficulty: "expert", Layers: 5, Period: "Neo-Babylonian", X: 70, Y: 60},
			{Name: "Uruk", Size: 3, Difficulty: "hard", Layers: 4, Period: "Uruk", X: 25, Y: 55},
			{Name: "Kish", Size: 3, Difficulty: "easy", Layers: 2, Period: "Early Dynastic", X: 50, Y: 30},
		}
	}
}
