package model

import "time"

// CSIPriceData is a product listing scraped from CoolStuffInc
type CSIPriceData struct {
	CSIID        int64            `json:"csi_id" yaml:"csi_id"`
	Title        string           `json:"title" yaml:"title"`
	SKU          string           `json:"sku,omitempty" yaml:"sku,omitempty"`
	ImageURL     string           `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Availability GameAvailability `json:"availability,omitempty" yaml:"availability,omitempty"`
	ReleaseDate  string           `json:"release_date,omitempty" yaml:"release_date,omitempty"` // free text, e.g. "First quarter 2015"
	MSRP         float64          `json:"msrp,omitempty" yaml:"msrp,omitempty"`
	CurrentPrice float64          `json:"current_price,omitempty" yaml:"current_price,omitempty"`
	Category     GameCategory     `json:"category,omitempty" yaml:"category,omitempty"`
	ReviewState  ReviewState      `json:"review_state,omitempty" yaml:"review_state,omitempty"`
	AddDate      *time.Time       `json:"add_date,omitempty" yaml:"add_date,omitempty"`
	ReviewDate   *time.Time       `json:"review_date,omitempty" yaml:"review_date,omitempty"`
}

// MMPriceData is a product listing scraped from Miniature Market
type MMPriceData struct {
	MMID         int64            `json:"mm_id" yaml:"mm_id"`
	Title        string           `json:"title" yaml:"title"`
	SKU          string           `json:"sku,omitempty" yaml:"sku,omitempty"`
	ImageURL     string           `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	Availability GameAvailability `json:"availability,omitempty" yaml:"availability,omitempty"`
	MSRP         float64          `json:"msrp,omitempty" yaml:"msrp,omitempty"`
	CurrentPrice float64          `json:"current_price,omitempty" yaml:"current_price,omitempty"`
	Category     GameCategory     `json:"category,omitempty" yaml:"category,omitempty"`
	ReviewState  ReviewState      `json:"review_state,omitempty" yaml:"review_state,omitempty"`
	AddDate      *time.Time       `json:"add_date,omitempty" yaml:"add_date,omitempty"`
	ReviewDate   *time.Time       `json:"review_date,omitempty" yaml:"review_date,omitempty"`
}
