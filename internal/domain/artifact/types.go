package artifact

// Type classifies an artifact by what it is
type Type string

const (
	TypeStampedBrick    Type = "stamped_brick"
	TypeCuneiformTablet Type = "cuneiform_tablet"
	TypeCylinderSeal    Type = "cylinder_seal"
	TypePottery         Type = "pottery"
	TypeJewelry         Type = "jewelry"
	TypeStatue          Type = "statue"
	TypeTool            Type = "tool"
	TypeWeapon          Type = "weapon"
	TypeUnidentified    Type = "unidentified"
)

// Rarity is the ordered classification driving an artifact's value range
// and identification eligibility
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityVeryRare  Rarity = "very_rare"
	RarityLegendary Rarity = "legendary"
)

var rarityRanks = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityVeryRare:  3,
	RarityLegendary: 4,
}

// Rank returns the rarity's position on the ordered scale; unknown rarities
// rank lowest
func (r Rarity) Rank() int {
	return rarityRanks[r]
}

// AtLeast reports whether r is at or above the given tier
func (r Rarity) AtLeast(other Rarity) bool {
	return r.Rank() >= other.Rank()
}
