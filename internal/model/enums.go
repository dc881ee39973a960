package model

// GameType classifies a game record
type GameType string

const (
	GameTypeBase        GameType = "base"
	GameTypeExpansion   GameType = "expansion"
	GameTypeCollectible GameType = "collectible"
	GameTypeAccessory   GameType = "accessory"
)

// IsValid returns true if the type is a known game type
func (t GameType) IsValid() bool {
	switch t {
	case GameTypeBase, GameTypeExpansion, GameTypeCollectible, GameTypeAccessory:
		return true
	default:
		return false
	}
}

// GameAvailability is the stock state reported by a retailer
type GameAvailability string

const (
	AvailabilityInStock     GameAvailability = "in stock"
	AvailabilityPreorder    GameAvailability = "preorder"
	AvailabilityOutOfStock  GameAvailability = "out of stock"
	AvailabilityUnavailable GameAvailability = "unavailable"
)

// IsValid returns true if the availability is a known value
func (a GameAvailability) IsValid() bool {
	switch a {
	case AvailabilityInStock, AvailabilityPreorder, AvailabilityOutOfStock, AvailabilityUnavailable:
		return true
	default:
		return false
	}
}

// ReviewState tracks manual review of a scraped record
type ReviewState string

const (
	ReviewStatePending  ReviewState = "pending"  // Default - not yet looked at
	ReviewStateReviewed ReviewState = "reviewed" // Accepted
	ReviewStateRejected ReviewState = "rejected" // Not a usable match
)

// IsValid returns true if the state is a known review state
func (s ReviewState) IsValid() bool {
	switch s {
	case ReviewStatePending, ReviewStateReviewed, ReviewStateRejected:
		return true
	default:
		return false
	}
}

// GameCategory is the retailer product category
type GameCategory string

const (
	CategoryBoardGame   GameCategory = "board game"
	CategoryCardGame    GameCategory = "card game"
	CategoryCollectible GameCategory = "collectible"
	CategoryRPG         GameCategory = "rpg"
	CategoryMiniatures  GameCategory = "miniatures"
	CategoryAccessory   GameCategory = "accessory"
	CategoryOther       GameCategory = "other"
)

// IsValid returns true if the category is a known value
func (c GameCategory) IsValid() bool {
	switch c {
	case CategoryBoardGame, CategoryCardGame, CategoryCollectible, CategoryRPG,
		CategoryMiniatures, CategoryAccessory, CategoryOther:
		return true
	default:
		return false
	}
}
