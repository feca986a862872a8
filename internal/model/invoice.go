package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a committed sale. It is written exactly once at checkout and
// never edited afterwards; totals are denormalized from its items so that
// later category changes cannot rewrite history.
// Invariant at write time: TotalAmount = Σ(item price*qty) + Σ(item tax),
// TotalTax = Σ(item tax).
type Invoice struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_amount"`
	TotalTax    decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"total_tax"`
	Items       []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// InvoiceItem is one immutable line of an invoice. CategoryID is nullable:
// deleting a category detaches historical items (ON DELETE SET NULL) and
// they display as "Uncategorized" from then on.
type InvoiceItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	InvoiceID    uint            `gorm:"not null;index" json:"invoice_id"`
	ItemName     string          `gorm:"type:varchar(200);not null" json:"item_name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	PricePerItem decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"price_per_item"`
	CategoryID   *uint           `gorm:"index" json:"category_id"`
	Category     *Category       `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tax          decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"tax"`
	CreatedAt    time.Time       `json:"created_at"`
}
