package models

import "time"

// Product represents a catalog entry. Fields are tagged for both DB scanning
// and JSON serialization. Image paths are stored relative and rewritten to
// absolute URLs at read time.
type Product struct {
	ID               int        `db:"id" json:"id"`
	SKU              string     `db:"sku" json:"sku"`
	Name             string     `db:"name" json:"name"`
	Brand            string     `db:"brand" json:"brand"`
	Category         string     `db:"category" json:"category"`
	Model            *string    `db:"model" json:"model,omitempty"`
	Price            float64    `db:"price" json:"price"`
	DiscountPrice    *float64   `db:"discount_price" json:"discountPrice,omitempty"`
	Currency         string     `db:"currency" json:"currency"`
	IsOnSale         bool       `db:"is_on_sale" json:"isOnSale"`
	StockQuantity    int        `db:"stock_quantity" json:"stockQuantity"`
	InStock          bool       `db:"in_stock" json:"inStock"`
	Specs            StringMap  `db:"specs" json:"specs"`
	Images           StringList `db:"images" json:"images"`
	Thumbnail        *string    `db:"thumbnail" json:"thumbnail,omitempty"`
	VideoURL         *string    `db:"video_url" json:"videoUrl,omitempty"`
	ShortDescription string     `db:"short_description" json:"shortDescription"`
	FullDescription  string     `db:"full_description" json:"fullDescription"`
	KeyFeatures      StringList `db:"key_features" json:"keyFeatures"`
	Tags             StringList `db:"tags" json:"tags"`
	IsFeatured       bool       `db:"is_featured" json:"isFeatured"`
	IsNewRelease     bool       `db:"is_new_release" json:"isNewRelease"`
	WarrantyPeriod   *string    `db:"warranty_period" json:"warrantyPeriod,omitempty"`
	ReturnPolicyDays int        `db:"return_policy_days" json:"returnPolicyDays"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updatedAt"`
}

// CategoryCount is a per-category product tally for the dashboard breakdown.
type CategoryCount struct {
	Category string `db:"category" json:"category"`
	Count    int    `db:"count" json:"count"`
}
