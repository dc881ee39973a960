package model

import "time"

// BGGGame is a game as scraped from BoardGameGeek
type BGGGame struct {
	BGGID          int64       `json:"bgg_id" yaml:"bgg_id"`
	Name           string      `json:"name" yaml:"name"`
	YearPublished  int         `json:"year_published,omitempty" yaml:"year_published,omitempty"`
	MinPlayers     int         `json:"min_players,omitempty" yaml:"min_players,omitempty"`
	MaxPlayers     int         `json:"max_players,omitempty" yaml:"max_players,omitempty"`
	MinPlayingTime int         `json:"min_playing_time,omitempty" yaml:"min_playing_time,omitempty"`
	MaxPlayingTime int         `json:"max_playing_time,omitempty" yaml:"max_playing_time,omitempty"`
	ImageURL       string      `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ThumbnailURL   string      `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	Description    string      `json:"description,omitempty" yaml:"description,omitempty"`
	Rating         float64     `json:"rating,omitempty" yaml:"rating,omitempty"`
	RatingUsers    int         `json:"rating_users,omitempty" yaml:"rating_users,omitempty"`
	Rank           int         `json:"rank,omitempty" yaml:"rank,omitempty"`
	Publishers     []string    `json:"publishers,omitempty" yaml:"publishers,omitempty"`
	Designers      []string    `json:"designers,omitempty" yaml:"designers,omitempty"`
	Categories     []string    `json:"categories,omitempty" yaml:"categories,omitempty"`
	Mechanisms     []string    `json:"mechanisms,omitempty" yaml:"mechanisms,omitempty"`
	ExpansionIDs   []int64     `json:"expansion_ids,omitempty" yaml:"expansion_ids,omitempty"`
	ParentGameID   int64       `json:"parent_game_id,omitempty" yaml:"parent_game_id,omitempty"` // 0 when not an expansion
	GameType       GameType    `json:"game_type,omitempty" yaml:"game_type,omitempty"`
	ReviewState    ReviewState `json:"review_state,omitempty" yaml:"review_state,omitempty"`
	AddDate        *time.Time  `json:"add_date,omitempty" yaml:"add_date,omitempty"`
	ReviewDate     *time.Time  `json:"review_date,omitempty" yaml:"review_date,omitempty"`
}

// Game is the canonical game record assembled from the scraped sources
type Game struct {
	GameID           int64      `json:"game_id" yaml:"game_id"`
	BGGID            int64      `json:"bgg_id,omitempty" yaml:"bgg_id,omitempty"`
	Name             string     `json:"name" yaml:"name"`
	YearPublished    int        `json:"year_published,omitempty" yaml:"year_published,omitempty"`
	MinPlayers       int        `json:"min_players,omitempty" yaml:"min_players,omitempty"`
	MaxPlayers       int        `json:"max_players,omitempty" yaml:"max_players,omitempty"`
	MinPlayingTime   int        `json:"min_playing_time,omitempty" yaml:"min_playing_time,omitempty"`
	MaxPlayingTime   int        `json:"max_playing_time,omitempty" yaml:"max_playing_time,omitempty"`
	ImageURL         string     `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ThumbnailURL     string     `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	PrimaryPublisher string     `json:"primary_publisher,omitempty" yaml:"primary_publisher,omitempty"`
	Publishers       []string   `json:"publishers,omitempty" yaml:"publishers,omitempty"`
	Designers        []string   `json:"designers,omitempty" yaml:"designers,omitempty"`
	Categories       []string   `json:"categories,omitempty" yaml:"categories,omitempty"`
	Mechanisms       []string   `json:"mechanisms,omitempty" yaml:"mechanisms,omitempty"`
	ExpansionIDs     []int64    `json:"expansion_ids,omitempty" yaml:"expansion_ids,omitempty"`
	ParentGameID     int64      `json:"parent_game_id,omitempty" yaml:"parent_game_id,omitempty"`
	GameType         GameType   `json:"game_type,omitempty" yaml:"game_type,omitempty"`
	AddDate          *time.Time `json:"add_date,omitempty" yaml:"add_date,omitempty"`
}

// GameReltn links a canonical game to its records on each source site
type GameReltn struct {
	ReltnID    int64             `json:"reltn_id" yaml:"reltn_id"`
	GameID     int64             `json:"game_id" yaml:"game_id"`
	BGGID      int64             `json:"bgg_id,omitempty" yaml:"bgg_id,omitempty"`
	CSIID      int64             `json:"csi_id,omitempty" yaml:"csi_id,omitempty"`
	MMID       int64             `json:"mm_id,omitempty" yaml:"mm_id,omitempty"`
	ASINKeys   []string          `json:"asin_keys,omitempty" yaml:"asin_keys,omitempty"`
	OtherSites map[string]string `json:"other_sites,omitempty" yaml:"other_sites,omitempty"` // site name -> product URL
}
