package convert

import (
	"github.com/forgo/gamesdb/internal/database"
	"github.com/forgo/gamesdb/internal/model"
)

// Document field names shared by the retailer price records
const (
	FieldCSIID        = "csi_id"
	FieldMMID         = "mm_id"
	FieldTitle        = "title"
	FieldSKU          = "sku"
	FieldAvailability = "availability"
	FieldReleaseDate  = "release_date"
	FieldMSRP         = "msrp"
	FieldCurrentPrice = "current_price"
	FieldCategory     = "category"
)

// CSIPriceConverter maps CSIPriceData records to documents keyed by csi_id.
type CSIPriceConverter struct{}

func (CSIPriceConverter) Key(p *model.CSIPriceData) int64 {
	return p.CSIID
}

func (CSIPriceConverter) IdentityFilter(key int64) database.Document {
	return database.Document{FieldCSIID: key}
}

func (c CSIPriceConverter) RecordFilter(p *model.CSIPriceData) database.Document {
	return c.IdentityFilter(p.CSIID)
}

func (CSIPriceConverter) ToDocument(p *model.CSIPriceData) database.Document {
	doc := database.Document{
		FieldCSIID:        p.CSIID,
		FieldTitle:        p.Title,
		FieldSKU:          p.SKU,
		FieldImageURL:     p.ImageURL,
		FieldAvailability: string(p.Availability),
		FieldMSRP:         p.MSRP,
		FieldCurrentPrice: p.CurrentPrice,
		FieldCategory:     string(p.Category),
		FieldReviewState:  string(p.ReviewState),
	}
	if p.ReleaseDate != "" {
		doc[FieldReleaseDate] = p.ReleaseDate
	}
	setTime(doc, FieldAddDate, p.AddDate)
	setTime(doc, FieldReviewDate, p.ReviewDate)
	return doc
}

func (CSIPriceConverter) FromDocument(doc database.Document) (*model.CSIPriceData, error) {
	key, err := requireKey(doc, FieldCSIID)
	if err != nil {
		return nil, err
	}
	return &model.CSIPriceData{
		CSIID:        key,
		Title:        getString(doc, FieldTitle),
		SKU:          getString(doc, FieldSKU),
		ImageURL:     getString(doc, FieldImageURL),
		Availability: model.GameAvailability(getString(doc, FieldAvailability)),
		ReleaseDate:  getString(doc, FieldReleaseDate),
		MSRP:         getFloat(doc, FieldMSRP),
		CurrentPrice: getFloat(doc, FieldCurrentPrice),
		Category:     model.GameCategory(getString(doc, FieldCategory)),
		ReviewState:  model.ReviewState(getString(doc, FieldReviewState)),
		AddDate:      getTime(doc, FieldAddDate),
		ReviewDate:   getTime(doc, FieldReviewDate),
	}, nil
}

// MMPriceConverter maps MMPriceData records to documents keyed by mm_id.
type MMPriceConverter struct{}

func (MMPriceConverter) Key(p *model.MMPriceData) int64 {
	return p.MMID
}

func (MMPriceConverter) IdentityFilter(key int64) database.Document {
	return database.Document{FieldMMID: key}
}

func (c MMPriceConverter) RecordFilter(p *model.MMPriceData) database.Document {
	return c.IdentityFilter(p.MMID)
}

func (MMPriceConverter) ToDocument(p *model.MMPriceData) database.Document {
	doc := database.Document{
		FieldMMID:         p.MMID,
		FieldTitle:        p.Title,
		FieldSKU:          p.SKU,
		FieldImageURL:     p.ImageURL,
		FieldAvailability: string(p.Availability),
		FieldMSRP:         p.MSRP,
		FieldCurrentPrice: p.CurrentPrice,
		FieldCategory:     string(p.Category),
		FieldReviewState:  string(p.ReviewState),
	}
	setTime(doc, FieldAddDate, p.AddDate)
	setTime(doc, FieldReviewDate, p.ReviewDate)
	return doc
}

func (MMPriceConverter) FromDocument(doc database.Document) (*model.MMPriceData, error) {
	key, err := requireKey(doc, FieldMMID)
	if err != nil {
		return nil, err
	}
	return &model.MMPriceData{
		MMID:         key,
		Title:        getString(doc, FieldTitle),
		SKU:          getString(doc, FieldSKU),
		ImageURL:     getString(doc, FieldImageURL),
		Availability: model.GameAvailability(getString(doc, FieldAvailability)),
		MSRP:         getFloat(doc, FieldMSRP),
		CurrentPrice: getFloat(doc, FieldCurrentPrice),
		Category:     model.GameCategory(getString(doc, FieldCategory)),
		ReviewState:  model.ReviewState(getString(doc, FieldReviewState)),
		AddDate:      getTime(doc, FieldAddDate),
		ReviewDate:   getTime(doc, FieldReviewDate),
	}, nil
}
