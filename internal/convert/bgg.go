package convert

import (
	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/model"
)

// Document field names for BGGGame
const (
	FieldBGGID          = "bgg_id"
	FieldName           = "name"
	FieldYearPublished  = "year_published"
	FieldMinPlayers     = "min_players"
	FieldMaxPlayers     = "max_players"
	FieldMinPlayingTime = "min_playing_time"
	FieldMaxPlayingTime = "max_playing_time"
	FieldImageURL       = "image_url"
	FieldThumbnailURL   = "thumbnail_url"
	FieldDescription    = "description"
	FieldRating         = "rating"
	FieldRatingUsers    = "rating_users"
	FieldRank           = "rank"
	FieldPublishers     = "publishers"
	FieldDesigners      = "designers"
	FieldCategories     = "categories"
	FieldMechanisms     = "mechanisms"
	FieldExpansionIDs   = "expansion_ids"
	FieldParentGameID   = "parent_game_id"
	FieldGameType       = "game_type"
	FieldReviewState    = "review_state"
	FieldAddDate        = "add_date"
	FieldReviewDate     = "review_date"
)

// BGGGameConverter maps BGGGame records to documents keyed by bgg_id.
type BGGGameConverter struct{}

func (BGGGameConverter) Key(g *model.BGGGame) int64 {
	return g.BGGID
}

func (BGGGameConverter) IdentityFilter(key int64) database.Document {
	return database.Document{FieldBGGID: key}
}

func (c BGGGameConverter) RecordFilter(g *model.BGGGame) database.Document {
	return c.IdentityFilter(g.BGGID)
}

func (BGGGameConverter) ToDocument(g *model.BGGGame) database.Document {
	doc := database.Document{
		FieldBGGID:          g.BGGID,
		FieldName:           g.Name,
		FieldYearPublished:  int64(g.YearPublished),
		FieldMinPlayers:     int64(g.MinPlayers),
		FieldMaxPlayers:     int64(g.MaxPlayers),
		FieldMinPlayingTime: int64(g.MinPlayingTime),
		FieldMaxPlayingTime: int64(g.MaxPlayingTime),
		FieldImageURL:       g.ImageURL,
		FieldThumbnailURL:   g.ThumbnailURL,
		FieldDescription:    g.Description,
		FieldRating:         g.Rating,
		FieldRatingUsers:    int64(g.RatingUsers),
		FieldRank:           int64(g.Rank),
		FieldParentGameID:   g.ParentGameID,
		FieldGameType:       string(g.GameType),
		FieldReviewState:    string(g.ReviewState),
	}
	setStrings(doc, FieldPublishers, g.Publishers)
	setStrings(doc, FieldDesigners, g.Designers)
	setStrings(doc, FieldCategories, g.Categories)
	setStrings(doc, FieldMechanisms, g.Mechanisms)
	setInt64s(doc, FieldExpansionIDs, g.ExpansionIDs)
	setTime(doc, FieldAddDate, g.AddDate)
	setTime(doc, FieldReviewDate, g.ReviewDate)
	return doc
}

func (BGGGameConverter) FromDocument(doc database.Document) (*model.BGGGame, error) {
	key, err := requireKey(doc, FieldBGGID)
	if err != nil {
		return nil, err
	}
	return &model.BGGGame{
		BGGID:          key,
		Name:           getString(doc, FieldName),
		YearPublished:  getInt(doc, FieldYearPublished),
		MinPlayers:     getInt(doc, FieldMinPlayers),
		MaxPlayers:     getInt(doc, FieldMaxPlayers),
		MinPlayingTime: getInt(doc, FieldMinPlayingTime),
		MaxPlayingTime: getInt(doc, FieldMaxPlayingTime),
		ImageURL:       getString(doc, FieldImageURL),
		ThumbnailURL:   getString(doc, FieldThumbnailURL),
		Description:    getString(doc, FieldDescription),
		Rating:         getFloat(doc, FieldRating),
		RatingUsers:    getInt(doc, FieldRatingUsers),
		Rank:           getInt(doc, FieldRank),
		Publishers:     getStringSlice(doc, FieldPublishers),
		Designers:      getStringSlice(doc, FieldDesigners),
		Categories:     getStringSlice(doc, FieldCategories),
		Mechanisms:     getStringSlice(doc, FieldMechanisms),
		ExpansionIDs:   getInt64Slice(doc, FieldExpansionIDs),
		ParentGameID:   getInt64(doc, FieldParentGameID),
		GameType:       model.GameType(getString(doc, FieldGameType)),
		ReviewState:    model.ReviewState(getString(doc, FieldReviewState)),
		AddDate:        getTime(doc, FieldAddDate),
		ReviewDate:     getTime(doc, FieldReviewDate),
	}, nil
}
