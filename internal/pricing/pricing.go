package pricing

import (
	"errors"

	"pos/internal/model"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("item name must not be empty")
	ErrInvalidQty    = errors.New("quantity must be greater than zero")
	ErrNegativePrice = errors.New("unit price must not be negative")
	ErrIndexRange    = errors.New("line index out of range")
)

// Line is one uncommitted cart line. Tax and Total are fixed when the line
// is added; editing a category later does not touch lines already in a cart.
type Line struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Category  model.Category
	Tax       decimal.Decimal
	Total     decimal.Decimal
}

// Cart is the ephemeral, ordered staging area for a sale. It is a plain
// value passed through pure functions so the math is testable without any
// HTTP or database harness.
type Cart struct {
	Lines []Line
}

// Totals are the cart aggregates shown on the cashier summary panel.
type Totals struct {
	Subtotal   decimal.Decimal
	TotalTax   decimal.Decimal
	GrandTotal decimal.Decimal
}

// AddLine appends a priced line to the cart.
// tax = unitPrice * quantity * category.TaxRate
// total = unitPrice * quantity + tax
// Invalid input returns the cart unchanged alongside the error.
func AddLine(cart Cart, name string, quantity int, unitPrice decimal.Decimal, category model.Category) (Cart, error) {
	if name == "" {
		return cart, ErrEmptyName
	}
	if quantity <= 0 {
		return cart, ErrInvalidQty
	}
	if unitPrice.IsNegative() {
		return cart, ErrNegativePrice
	}

	base := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	tax := base.Mul(category.TaxRate)

	line := Line{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Category:  category,
		Tax:       tax,
		Total:     base.Add(tax),
	}

	out := Cart{Lines: make([]Line, 0, len(cart.Lines)+1)}
	out.Lines = append(out.Lines, cart.Lines...)
	out.Lines = append(out.Lines, line)
	return out, nil
}

// RemoveLine drops the line at index, preserving the order of the rest.
func RemoveLine(cart Cart, index int) (Cart, error) {
	if index < 0 || index >= len(cart.Lines) {
		return cart, ErrIndexRange
	}
	out := Cart{Lines: make([]Line, 0, len(cart.Lines)-1)}
	out.Lines = append(out.Lines, cart.Lines[:index]...)
	out.Lines = append(out.Lines, cart.Lines[index+1:]...)
	return out, nil
}

// Aggregate recomputes the cart totals from scratch. Decimal accumulation
// keeps GrandTotal == Subtotal + TotalTax exact regardless of line count.
func Aggregate(cart Cart) Totals {
	subtotal := decimal.Zero
	totalTax := decimal.Zero
	for _, line := range cart.Lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
		totalTax = totalTax.Add(line.Tax)
	}
	return Totals{
		Subtotal:   subtotal,
		TotalTax:   totalTax,
		GrandTotal: subtotal.Add(totalTax),
	}
}
