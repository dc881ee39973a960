package model

import "testing"

func TestEnums_IsValid(t *testing.T) {
	t.Parallel()

	valid := []interface{ IsValid() bool }{
		GameTypeBase, GameTypeExpansion, GameTypeCollectible, GameTypeAccessory,
		AvailabilityInStock, AvailabilityPreorder, AvailabilityOutOfStock, AvailabilityUnavailable,
		ReviewStatePending, ReviewStateReviewed, ReviewStateRejected,
		CategoryBoardGame, CategoryCardGame, CategoryCollectible, CategoryRPG,
		CategoryMiniatures, CategoryAccessory, CategoryOther,
	}
	for _, v := range valid {
		if !v.IsValid() {
			t.Errorf("expected %v to be valid", v)
		}
	}

	invalid := []interface{ IsValid() bool }{
		GameType("BASE"), GameAvailability("INSTOCK"), ReviewState(""), GameCategory("puzzle"),
	}
	for _, v := range invalid {
		if v.IsValid() {
			t.Errorf("expected %v to be invalid", v)
		}
	}
}
