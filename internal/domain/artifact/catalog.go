package artifact

// Attributes is the static identification record for an artifact type:
// what a specialist reveals when the piece is identified
type Attributes struct {
	Name        string
	Style       string
	Material    string
	Age         string
	Inscription string
}

var catalog = map[Type]Attributes{
	TypeStampedBrick: {
		Name:        "Stamped Brick",
		Style:       "Neo-Sumerian",
		Material:    "Clay",
		Age:         "Ur III",
		Inscription: "Royal Building Inscription",
	},
	TypeCuneiformTablet: {
		Name:        "Cuneiform Tablet",
		Style:       "Akkadian",
		Material:    "Clay",
		Age:         "Old Babylonian",
		Inscription: "Administrative Record",
	},
	TypeCylinderSeal: {
		Name:        "Cylinder Seal",
		Style:       "Neo-Sumerian",
		Material:    "Stone",
		Age:         "Ur III",
		Inscription: "Owner Inscription",
	},
	TypePottery: {
		Name:     "Pottery Vessel",
		Style:    "Mesopotamian",
		Material: "Clay",
		Age:      "Various",
	},
	TypeJewelry: {
		Name:     "Gold Jewelry",
		Style:    "Mesopotamian",
		Material: "Gold",
		Age:      "Various",
	},
	TypeStatue: {
		Name:     "Stone Statue",
		Style:    "Mesopotamian",
		Material: "Stone",
		Age:      "Various",
	},
	TypeTool: {
		Name:     "Bronze Tool",
		Style:    "Mesopotamian",
		Material: "Bronze",
		Age:      "Various",
	},
	TypeWeapon: {
		Name:     "Bronze Weapon",
		Style:    "Mesopotamian",
		Material: "Bronze",
		Age:      "Various",
	},
	TypeUnidentified: {
		Name:     "Artifact (Unidentified)",
		Style:    "Unknown",
		Material: "Unknown",
		Age:      "Unknown",
	},
}

// CatalogAttributes returns the identification record for a type,
// falling back to the unidentified entry for unknown types
func CatalogAttributes(t Type) Attributes {
	if attrs, ok := catalog[t]; ok {
		return attrs
	}
	return catalog[TypeUnidentified]
}
