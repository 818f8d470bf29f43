package artifact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellsim/tellsim-go/internal/domain/artifact"
	"github.com/tellsim/tellsim-go/internal/domain/shared"
)

func TestArtefact_StartsUnidentifiedWithSentinels(t *testing.T) {
	a := artifact.NewArtefact("tile-1", "Tell Abu Salabikh", artifact.TypePottery, artifact.RarityCommon, 30, nil)

	assert.False(t, a.Identified())
	assert.Equal(t, "Artifact (Unidentified)", a.Name())
	assert.Equal(t, "Unknown", a.Style())
	assert.Equal(t, "Unknown", a.Material())
	assert.Equal(t, "Unknown", a.Age())
	assert.Empty(t, a.Inscription())
	assert.Equal(t, 30, a.Value())
	assert.Nil(t, a.IdentifiedAt())
}

func TestArtefact_IdentifyFixesFieldsAndRevalues(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	a := artifact.NewArtefact("tile-1", "Nippur", artifact.TypeCuneiformTablet, artifact.RarityRare, 400, clock)

	a.Identify("Cuneiform Tablet", "Akkadian", "Clay", "Old Babylonian", "Administrative Record", 1.5)

	require.True(t, a.Identified())
	assert.Equal(t, 600, a.Value())
	assert.Equal(t, "Akkadian", a.Style())
	require.NotNil(t, a.IdentifiedAt())

	// Re-identification is a no-op
	a.Identify("Other Name", "Other", "Other", "Other", "", 2.0)
	assert.Equal(t, "Cuneiform Tablet", a.Name())
	assert.Equal(t, 600, a.Value())
}

func TestArtefact_BonusAppliesTenPercentPerPoint(t *testing.T) {
	a := artifact.NewArtefact("tile-1", "Ur", artifact.TypeCylinderSeal, artifact.RarityRare, 200, nil)

	a.AddBonus(artifact.Bonus{Type: "Mentioning ruler", Value: 2})
	assert.Equal(t, 240, a.Value())

	a.AddBonus(artifact.Bonus{Type: "Mentioning place name", Value: 1})
	assert.Equal(t, 264, a.Value())
	assert.Len(t, a.Bonuses(), 2)
}

func TestArtefact_CloneIsDeepAndKeepsIdentity(t *testing.T) {
	a := artifact.NewArtefact("tile-1", "Kish", artifact.TypeJewelry, artifact.RarityVeryRare, 1200, nil)
	a.AddBonus(artifact.Bonus{Type: "Mentioning ruler", Value: 2})

	clone := a.Clone()
	clone.AddBonus(artifact.Bonus{Type: "Mentioning place name", Value: 1})

	assert.Equal(t, a.ID(), clone.ID())
	assert.Len(t, a.Bonuses(), 1, "live artifact untouched by clone mutation")
	assert.NotEqual(t, a.Value(), clone.Value())
}

func TestRarity_Ordering(t *testing.T) {
	assert.True(t, artifact.RarityLegendary.AtLeast(artifact.RarityRare))
	assert.True(t, artifact.RarityRare.AtLeast(artifact.RarityRare))
	assert.False(t, artifact.RarityUncommon.AtLeast(artifact.RarityRare))
}

func TestCatalogAttributes_FallsBackToUnidentified(t *testing.T) {
	attrs := artifact.CatalogAttributes(artifact.Type("shard_of_mystery"))
	assert.Equal(t, "Artifact (Unidentified)", attrs.Name)
}
