package models

// Event is one recorded user interaction from the raw events export.
type Event struct {
	ItemID     string   `csv:"item_id" json:"item_id"`
	Type       string   `csv:"type" json:"type"`
	Date       DateTime `csv:"date" json:"date"`
	Country    string   `csv:"country" json:"country"`
	Device     string   `csv:"device" json:"device"`
	UserID     string   `csv:"user_id" json:"user_id"`
	PriceInUSD Money    `csv:"price_in_usd" json:"price_in_usd"`
}

// CatalogItem is one product from the catalog export. Variant is carried
// through parsing but never joined onto events.
type CatalogItem struct {
	ID       string `csv:"id" json:"id"`
	Category string `csv:"category" json:"category"`
	Brand    string `csv:"brand" json:"brand"`
	Variant  string `csv:"variant" json:"variant"`
}

// FlatEvent is the joined, cleaned record the preparation pipeline persists:
// the event fields with item_id replaced by the matching catalog category and
// brand, country defaulted to CountryUnknown when absent, and a derived
// calendar day.
type FlatEvent struct {
	Type       string   `csv:"type" json:"type"`
	Date       DateTime `csv:"date" json:"date"`
	Country    string   `csv:"country" json:"country"`
	Device     string   `csv:"device" json:"device"`
	UserID     string   `csv:"user_id" json:"user_id"`
	PriceInUSD Money    `csv:"price_in_usd" json:"price_in_usd"`
	Category   string   `csv:"category" json:"category"`
	Brand      string   `csv:"brand" json:"brand"`
	DateDay    Day      `csv:"date_day" json:"date_day"`
}

const (
	TypeView      = "view"
	TypeAddToCart = "add_to_cart"
	TypePurchase  = "purchase"
)

// CountryUnknown is the sentinel written in place of a missing country code.
const CountryUnknown = "UNK"
