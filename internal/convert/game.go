package convert

import (
	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/model"
)

// Document field names for Game and GameReltn
const (
	FieldGameID           = "game_id"
	FieldPrimaryPublisher = "primary_publisher"
	FieldReltnID          = "reltn_id"
	FieldASINKeys         = "asin_keys"
	FieldOtherSites       = "other_sites"
)

// GameConverter maps Game records to documents keyed by game_id.
type GameConverter struct{}

func (GameConverter) Key(g *model.Game) int64 {
	return g.GameID
}

func (GameConverter) IdentityFilter(key int64) database.Document {
	return database.Document{FieldGameID: key}
}

func (c GameConverter) RecordFilter(g *model.Game) database.Document {
	return c.IdentityFilter(g.GameID)
}

func (GameConverter) ToDocument(g *model.Game) database.Document {
	doc := database.Document{
		FieldGameID:           g.GameID,
		FieldBGGID:            g.BGGID,
		FieldName:             g.Name,
		FieldYearPublished:    int64(g.YearPublished),
		FieldMinPlayers:       int64(g.MinPlayers),
		FieldMaxPlayers:       int64(g.MaxPlayers),
		FieldMinPlayingTime:   int64(g.MinPlayingTime),
		FieldMaxPlayingTime:   int64(g.MaxPlayingTime),
		FieldImageURL:         g.ImageURL,
		FieldThumbnailURL:     g.ThumbnailURL,
		FieldPrimaryPublisher: g.PrimaryPublisher,
		FieldParentGameID:     g.ParentGameID,
		FieldGameType:         string(g.GameType),
	}
	setStrings(doc, FieldPublishers, g.Publishers)
	setStrings(doc, FieldDesigners, g.Designers)
	setStrings(doc, FieldCategories, g.Categories)
	setStrings(doc, FieldMechanisms, g.Mechanisms)
	setInt64s(doc, FieldExpansionIDs, g.ExpansionIDs)
	setTime(doc, FieldAddDate, g.AddDate)
	return doc
}

func (GameConverter) FromDocument(doc database.Document) (*model.Game, error) {
	key, err := requireKey(doc, FieldGameID)
	if err != nil {
		return nil, err
	}
	return &model.Game{
		GameID:           key,
		BGGID:            getInt64(doc, FieldBGGID),
		Name:             getString(doc, FieldName),
		YearPublished:    getInt(doc, FieldYearPublished),
		MinPlayers:       getInt(doc, FieldMinPlayers),
		MaxPlayers:       getInt(doc, FieldMaxPlayers),
		MinPlayingTime:   getInt(doc, FieldMinPlayingTime),
		MaxPlayingTime:   getInt(doc, FieldMaxPlayingTime),
		ImageURL:         getString(doc, FieldImageURL),
		ThumbnailURL:     getString(doc, FieldThumbnailURL),
		PrimaryPublisher: getString(doc, FieldPrimaryPublisher),
		Publishers:       getStringSlice(doc, FieldPublishers),
		Designers:        getStringSlice(doc, FieldDesigners),
		Categories:       getStringSlice(doc, FieldCategories),
		Mechanisms:       getStringSlice(doc, FieldMechanisms),
		ExpansionIDs:     getInt64Slice(doc, FieldExpansionIDs),
		ParentGameID:     getInt64(doc, FieldParentGameID),
		GameType:         model.GameType(getString(doc, FieldGameType)),
		AddDate:          getTime(doc, FieldAddDate),
	}, nil
}

// GameReltnConverter maps GameReltn records to documents keyed by reltn_id.
type GameReltnConverter struct{}

func (GameReltnConverter) Key(r *model.GameReltn) int64 {
	return r.ReltnID
}

func (GameReltnConverter) IdentityFilter(key int64) database.Document {
	return database.Document{FieldReltnID: key}
}

func (c GameReltnConverter) RecordFilter(r *model.GameReltn) database.Document {
	return c.IdentityFilter(r.ReltnID)
}

// GameFilter matches relations by the canonical game they point at.
func (GameReltnConverter) GameFilter(gameID int64) database.Document {
	return database.Document{FieldGameID: gameID}
}

func (GameReltnConverter) ToDocument(r *model.GameReltn) database.Document {
	doc := database.Document{
		FieldReltnID: r.ReltnID,
		FieldGameID:  r.GameID,
		FieldBGGID:   r.BGGID,
		FieldCSIID:   r.CSIID,
		FieldMMID:    r.MMID,
	}
	setStrings(doc, FieldASINKeys, r.ASINKeys)
	if r.OtherSites != nil {
		sites := make(database.Document, len(r.OtherSites))
		for site, url := range r.OtherSites {
			sites[site] = url
		}
		doc[FieldOtherSites] = sites
	}
	return doc
}

func (GameReltnConverter) FromDocument(doc database.Document) (*model.GameReltn, error) {
	key, err := requireKey(doc, FieldReltnID)
	if err != nil {
		return nil, err
	}
	return &model.GameReltn{
		ReltnID:    key,
		GameID:     getInt64(doc, FieldGameID),
		BGGID:      getInt64(doc, FieldBGGID),
		CSIID:      getInt64(doc, FieldCSIID),
		MMID:       getInt64(doc, FieldMMID),
		ASINKeys:   getStringSlice(doc, FieldASINKeys),
		OtherSites: getStringMap(doc, FieldOtherSites),
	}, nil
}
