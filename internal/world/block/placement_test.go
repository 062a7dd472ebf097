package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTier(t *testing.T) {
	r := Default()
	tests := []struct {
		id   int
		want PlacementTier
	}{
		{int(StoneBlockID), TierNormal},
		{int(AirBlockID), TierNormal},
		{int(TorchBlockID), TierPlaceAfterNormal},
		{int(LeverBlockID), TierPlaceAfterNormal},
		{int(WoodenButtonBlockID), TierPlaceAfterNormal},
		{int(SignPostBlockID), TierPlaceLast},
		{int(IronDoorBlockID), TierPlaceLast},
		{int(CactusBlockID), TierPlaceLast},
		// есть в обоих списках
		{int(PistonExtensionBlockID), TierPlaceLast},
		{int(PistonMovingPieceBlockID), TierPlaceLast},
		{2000, TierNormal},
		{-7, TierNormal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Tier(tt.id), "блок %d", tt.id)
	}
}

func TestTierListsAreDisjoint(t *testing.T) {
	r := Default()
	last := make(map[BlockID]bool)
	for _, id := range r.PlaceLastIDs() {
		last[id] = true
	}
	for _, id := range r.PlaceAfterNormalIDs() {
		assert.False(t, last[id], "блок %d в обеих очередях", id)
	}

	assert.Len(t, r.PlaceLastIDs(), len(placeLast))
	assert.Len(t, r.PlaceAfterNormalIDs(), len(placeAfterNormal)-2)
	assert.IsIncreasing(t, r.PlaceLastIDs())
	assert.IsIncreasing(t, r.PlaceAfterNormalIDs())
}

func TestTierIsTotal(t *testing.T) {
	r := Default()
	for id := -16; id <= MaxBlockID+16; id++ {
		assert.Contains(t, []PlacementTier{TierNormal, TierPlaceAfterNormal, TierPlaceLast}, r.Tier(id))
	}
}

func TestIsRail(t *testing.T) {
	assert.True(t, IsRail(int(MinecartTracksBlockID)))
	assert.True(t, IsRail(int(PoweredRailBlockID)))
	assert.False(t, IsRail(int(DetectorRailBlockID)))
	assert.False(t, IsRail(int(StoneBlockID)))
	assert.False(t, IsRail(-66))
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "normal", TierNormal.String())
	assert.Equal(t, "place_after_normal", TierOf(int(TorchBlockID)).String())
	assert.Equal(t, "place_last", TierOf(int(SignPostBlockID)).String())
}
