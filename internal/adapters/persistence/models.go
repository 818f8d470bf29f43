package persistence

import (
	"time"
)

// PlayerModel represents the players table
type PlayerModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Money           int       `gorm:"column:money;not null"`
	Reputation      int       `gorm:"column:reputation;not null;default:0"`
	Workers         int       `gorm:"column:workers;not null;default:0"`
	Archaeologists  int       `gorm:"column:archaeologists;not null;default:0"`
	Linguists       int       `gorm:"column:linguists;not null;default:0"`
	DiscoveredSites string    `gorm:"column:discovered_sites;type:text"` // JSON array as text
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (PlayerModel) TableName() string {
	return "players"
}

// ArtefactModel represents the artefacts table
type ArtefactModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Type         string     `gorm:"column:type;not null"`
	Rarity       string     `gorm:"column:rarity;not null"`
	Value        int        `gorm:"column:value;not null"`
	Identified   int        `gorm:"column:identified;not null;default:0"` // 0 or 1 (SQLite compatible)
	Exhibited    int        `gorm:"column:exhibited;not null;default:0"`  // 0 or 1, on the museum floor
	TileID       string     `gorm:"column:tile_id"`
	Provenience  string     `gorm:"column:provenience"`
	Style        string     `gorm:"column:style"`
	Material     string     `gorm:"column:material"`
	Age          string     `gorm:"column:age"`
	Inscription  string     `gorm:"column:inscription"`
	SetName      string     `gorm:"column:set_name"`
	Bonuses      string     `gorm:"column:bonuses;type:text"` // JSON array as text
	DiscoveredAt time.Time  `gorm:"column:discovered_at;not null"`
	IdentifiedAt *time.Time `gorm:"column:identified_at"`
}

func (ArtefactModel) TableName() string {
	return "artefacts"
}

// JournalModel represents the journal table
type JournalModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"column:timestamp;not null;index"`
	Level     string    `gorm:"column:level;not null;index"`
	Message   string    `gorm:"column:message;not null"`
}

func (JournalModel) TableName() string {
	return "journal"
}
