package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedName is the display name used when an invoice item no
// longer resolves to a category (the category was deleted after the sale).
const UncategorizedName = "Uncategorized"

// Category is a named tax bracket applied to cart lines at sale time.
// TaxRate is a decimal fraction, e.g. 0.0500 = 5%.
type Category struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"tax_rate"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
