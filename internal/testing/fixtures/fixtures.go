// Package fixtures provides the Abyss, Cosmic Encounter and Cosmic Incursion
// records used across the test suites.
//
// Each constructor returns a fresh copy, optionally customized:
//
//	abyss := fixtures.BGGGame(fixtures.BGGAbyssID)
//	renamed := fixtures.BGGGame(fixtures.BGGAbyssID, func(g *model.BGGGame) {
//	    g.Name = "Abyss (2nd printing)"
//	})
//
// Unknown ids return nil.
package fixtures

import (
	"time"

	"github.com/forgo/gamesdb/internal/model"
)

// BoardGameGeek ids
const (
	BGGAbyssID           int64 = 155987
	BGGCosmicEncounterID int64 = 39463
	BGGCosmicIncursionID int64 = 61001
)

// CoolStuffInc ids
const (
	CSIAbyssID           int64 = 203495
	CSICosmicEncounterID int64 = 136975
	CSICosmicIncursionID int64 = 136978
)

// Miniature Market ids
const (
	MMAbyssID           int64 = 40693
	MMCosmicEncounterID int64 = 15138
	MMCosmicIncursionID int64 = 15102
)

// Canonical game ids. Cosmic Incursion holds the largest id.
const (
	GameAbyssID           int64 = 101
	GameCosmicEncounterID int64 = 102
	GameCosmicIncursionID int64 = 103
)

// Relation ids
const (
	ReltnAbyssID           int64 = 201
	ReltnCosmicEncounterID int64 = 202
	ReltnCosmicIncursionID int64 = 203
)

// AddDate is the fixed add date stamped on every fixture.
var AddDate = time.Date(2015, time.January, 12, 9, 30, 0, 0, time.UTC)

// ============================================================================
// BoardGameGeek Fixtures
// ============================================================================

// BGGGame returns the BoardGameGeek record for id.
func BGGGame(id int64, opts ...func(*model.BGGGame)) *model.BGGGame {
	var g *model.BGGGame
	switch id {
	case BGGAbyssID:
		g = bggAbyss()
	case BGGCosmicEncounterID:
		g = bggCosmicEncounter()
	case BGGCosmicIncursionID:
		g = bggCosmicIncursion()
	default:
		return nil
	}
	added := AddDate
	g.AddDate = &added
	g.ReviewState = model.ReviewStatePending
	for _, fn := range opts {
		fn(g)
	}
	return g
}

func bggAbyss() *model.BGGGame {
	return &model.BGGGame{
		BGGID:          BGGAbyssID,
		Name:           "Abyss",
		YearPublished:  2014,
		MinPlayers:     2,
		MaxPlayers:     4,
		MinPlayingTime: 45,
		MaxPlayingTime: 45,
		ImageURL:       "http://cf.geekdo-images.com/images/pic1965255.jpg",
		ThumbnailURL:   "http://cf.geekdo-images.com/images/pic1965255_t.jpg",
		Description:    "The Abyss power is once again vacant, so the time has come to get your hands on the throne and its privileges. Use all of your cunning to win or buy votes in the Council.",
		Rating:         7.412,
		RatingUsers:    1405,
		Rank:           412,
		Publishers:     []string{"Bombyx", "Asmodee", "Asterion Press", "REBEL.pl"},
		Designers:      []string{"Bruno Cathala", "Charles Chevallier"},
		Categories:     []string{"Card Game", "Mythology", "Nautical"},
		Mechanisms:     []string{"Auction/Bidding", "Hand Management", "Set Collection"},
		GameType:       model.GameTypeBase,
	}
}

func bggCosmicEncounter() *model.BGGGame {
	return &model.BGGGame{
		BGGID:          BGGCosmicEncounterID,
		Name:           "Cosmic Encounter",
		YearPublished:  2008,
		MinPlayers:     3,
		MaxPlayers:     5,
		MinPlayingTime: 60,
		MaxPlayingTime: 60,
		ImageURL:       "http://cf.geekdo-images.com/images/pic354780.jpg",
		ThumbnailURL:   "http://cf.geekdo-images.com/images/pic354780_t.jpg",
		Description:    "Build a galactic empire... In the depths of space, the alien races of the Cosmos vie with each other for control of the universe.",
		Rating:         7.58417,
		RatingUsers:    12054,
		Rank:           74,
		Publishers:     []string{"Arclight", "Asterion Press", "Edge Entertainment", "Fantasy Flight Games", "Heidelberger Spieleverlag"},
		Designers:      []string{"Bill Eberle", "Jack Kittredge", "Bill Norton", "Peter Olotka", "Kevin Wilson"},
		Categories:     []string{"Bluffing", "Negotiation", "Science Fiction", "Space Exploration"},
		Mechanisms:     []string{"Hand Management", "Partnerships", "Variable Player Powers"},
		ExpansionIDs:   []int64{114276, 87507, 153971, BGGCosmicIncursionID, 143760},
		GameType:       model.GameTypeBase,
	}
}

func bggCosmicIncursion() *model.BGGGame {
	return &model.BGGGame{
		BGGID:          BGGCosmicIncursionID,
		Name:           "Cosmic Encounter: Cosmic Incursion",
		YearPublished:  2010,
		MinPlayers:     3,
		MaxPlayers:     6,
		MinPlayingTime: 60,
		MaxPlayingTime: 60,
		ImageURL:       "http://cf.geekdo-images.com/images/pic657393.jpg",
		ThumbnailURL:   "http://cf.geekdo-images.com/images/pic657393_t.jpg",
		Description:    "Over the years, alien empires have risen and fallen. 20 new alien cultures are now racing towards the site of the conflict.",
		Rating:         8.27179,
		RatingUsers:    1781,
		Publishers:     []string{"Arclight", "Edge Entertainment", "Fantasy Flight Games", "Heidelberger Spieleverlag"},
		Designers:      []string{"Kevin Wilson"},
		Categories:     []string{"Bluffing", "Negotiation", "Expansion for Base-game", "Science Fiction", "Space Exploration"},
		Mechanisms:     []string{"Hand Management", "Partnerships", "Variable Player Powers"},
		GameType:       model.GameTypeExpansion,
		ParentGameID:   BGGCosmicEncounterID,
	}
}

// ============================================================================
// Retailer Fixtures
// ============================================================================

// CSIPrice returns the CoolStuffInc listing for id.
func CSIPrice(id int64, opts ...func(*model.CSIPriceData)) *model.CSIPriceData {
	var p *model.CSIPriceData
	switch id {
	case CSIAbyssID:
		p = &model.CSIPriceData{
			CSIID:        CSIAbyssID,
			Title:        "Abyss",
			SKU:          "ASMABY01US",
			ImageURL:     "http://a4.res.cloudinary.com/csicdn/image/upload/v1/Images/Products/Misc%20Art/Asmodee%20Editions/full/ASMABY01US.jpg",
			Availability: model.AvailabilityInStock,
			MSRP:         59.99,
			CurrentPrice: 40.99,
			Category:     model.CategoryCardGame,
		}
	case CSICosmicEncounterID:
		p = &model.CSIPriceData{
			CSIID:        CSICosmicEncounterID,
			Title:        "Cosmic Encounter Board Game",
			SKU:          "FFGCE01",
			ImageURL:     "http://a1.res.cloudinary.com/csicdn/image/upload/v1/Images/Products/Misc%20Art/Fantasy%20Flight%20Games/full/FFGCosmicEncounter.jpg",
			Availability: model.AvailabilityPreorder,
			ReleaseDate:  "First quarter 2015",
			MSRP:         59.95,
			CurrentPrice: 41.49,
			Category:     model.CategoryBoardGame,
		}
	case CSICosmicIncursionID:
		p = &model.CSIPriceData{
			CSIID:        CSICosmicIncursionID,
			Title:        "Cosmic Encounter: Cosmic Incursion Expansion",
			SKU:          "FFGCE02",
			ImageURL:     "http://a5.res.cloudinary.com/csicdn/image/upload/v1/Images/Products/Misc%20Art/Fantasy%20Flight%20Games/full/ffg_cosmicencounterCosmicIncursion.jpg",
			Availability: model.AvailabilityOutOfStock,
			CurrentPrice: 16.99,
			Category:     model.CategoryBoardGame,
		}
	default:
		return nil
	}
	added := AddDate
	p.AddDate = &added
	p.ReviewState = model.ReviewStatePending
	for _, fn := range opts {
		fn(p)
	}
	return p
}

// MMPrice returns the Miniature Market listing for id.
func MMPrice(id int64, opts ...func(*model.MMPriceData)) *model.MMPriceData {
	var p *model.MMPriceData
	switch id {
	case MMAbyssID:
		p = &model.MMPriceData{
			MMID:         MMAbyssID,
			Title:        "Abyss",
			SKU:          "ASMABY01US",
			ImageURL:     "http://a4.res.cloudinary.com/csicdn/image/upload/v1/Images/Products/Misc%20Art/Asmodee%20Editions/full/ASMABY01US.jpg",
			Availability: model.AvailabilityInStock,
			MSRP:         59.99,
			CurrentPrice: 41.39,
			Category:     model.CategoryCardGame,
		}
	case MMCosmicEncounterID:
		p = &model.MMPriceData{
			MMID:         MMCosmicEncounterID,
			Title:        "Cosmic Encounter",
			SKU:          "FFGCE01",
			ImageURL:     "http://cdn.miniaturemarket.com/media/catalog/product/f/f/ffgce01.jpg",
			Availability: model.AvailabilityOutOfStock,
			MSRP:         59.95,
			CurrentPrice: 41.37,
			Category:     model.CategoryBoardGame,
		}
	case MMCosmicIncursionID:
		p = &model.MMPriceData{
			MMID:         MMCosmicIncursionID,
			Title:        "Cosmic Encounter Cosmic Incursion Expansion",
			SKU:          "FFGCE02",
			ImageURL:     "http://cdn.miniaturemarket.com/media/catalog/product/F/F/FFGCE02.jpg",
			Availability: model.AvailabilityOutOfStock,
			MSRP:         24.95,
			CurrentPrice: 17.22,
			Category:     model.CategoryBoardGame,
		}
	default:
		return nil
	}
	added := AddDate
	p.AddDate = &added
	p.ReviewState = model.ReviewStatePending
	for _, fn := range opts {
		fn(p)
	}
	return p
}

// ============================================================================
// Canonical Game Fixtures
// ============================================================================

// Game returns the canonical game for id, built from the BoardGameGeek record.
func Game(id int64, opts ...func(*model.Game)) *model.Game {
	var (
		src          *model.BGGGame
		primary      string
		parentGameID int64
		expansionIDs []int64
	)
	switch id {
	case GameAbyssID:
		src, primary = BGGGame(BGGAbyssID), "Asmodee"
	case GameCosmicEncounterID:
		src, primary = BGGGame(BGGCosmicEncounterID), "Fantasy Flight Games"
		expansionIDs = []int64{GameCosmicIncursionID}
	case GameCosmicIncursionID:
		src, primary = BGGGame(BGGCosmicIncursionID), "Fantasy Flight Games"
		parentGameID = GameCosmicEncounterID
	default:
		return nil
	}

	g := &model.Game{
		GameID:           id,
		BGGID:            src.BGGID,
		Name:             src.Name,
		YearPublished:    src.YearPublished,
		MinPlayers:       src.MinPlayers,
		MaxPlayers:       src.MaxPlayers,
		MinPlayingTime:   src.MinPlayingTime,
		MaxPlayingTime:   src.MaxPlayingTime,
		ImageURL:         src.ImageURL,
		ThumbnailURL:     src.ThumbnailURL,
		PrimaryPublisher: primary,
		Publishers:       src.Publishers,
		Designers:        src.Designers,
		Categories:       src.Categories,
		Mechanisms:       src.Mechanisms,
		ExpansionIDs:     expansionIDs,
		ParentGameID:     parentGameID,
		GameType:         src.GameType,
		AddDate:          src.AddDate,
	}
	for _, fn := range opts {
		fn(g)
	}
	return g
}

// GameReltn returns the source relation for id. Cosmic Incursion has no
// other sites.
func GameReltn(id int64, opts ...func(*model.GameReltn)) *model.GameReltn {
	var r *model.GameReltn
	switch id {
	case ReltnAbyssID:
		r = &model.GameReltn{
			ReltnID:  ReltnAbyssID,
			GameID:   GameAbyssID,
			BGGID:    BGGAbyssID,
			CSIID:    CSIAbyssID,
			MMID:     MMAbyssID,
			ASINKeys: []string{"B00L0RF6XE"},
			OtherSites: map[string]string{
				"asmodee": "https://www.asmodee.com/en/games/abyss/",
			},
		}
	case ReltnCosmicEncounterID:
		r = &model.GameReltn{
			ReltnID:  ReltnCosmicEncounterID,
			GameID:   GameCosmicEncounterID,
			BGGID:    BGGCosmicEncounterID,
			CSIID:    CSICosmicEncounterID,
			MMID:     MMCosmicEncounterID,
			ASINKeys: []string{"B001JKV3P0", "B00TQ0JXYO"},
			OtherSites: map[string]string{
				"ffg": "https://www.fantasyflightgames.com/en/products/cosmic-encounter/",
			},
		}
	case ReltnCosmicIncursionID:
		r = &model.GameReltn{
			ReltnID:  ReltnCosmicIncursionID,
			GameID:   GameCosmicIncursionID,
			BGGID:    BGGCosmicIncursionID,
			CSIID:    CSICosmicIncursionID,
			MMID:     MMCosmicIncursionID,
			ASINKeys: []string{"B003V5LEW0"},
		}
	default:
		return nil
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}
