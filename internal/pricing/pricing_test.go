package pricing

import (
	"fmt"
	"math/rand"
	"testing"

	"pos/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func food5pct() model.Category {
	return model.Category{ID: 1, Name: "Food", TaxRate: decimal.RequireFromString("0.05")}
}

func TestAddLine_ComputesTaxAndTotal(t *testing.T) {
	cart, err := AddLine(Cart{}, "Apples", 3, decimal.RequireFromString("10.00"), food5pct())
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)

	line := cart.Lines[0]
	assert.Equal(t, "1.50", line.Tax.StringFixed(2))
	assert.Equal(t, "31.50", line.Total.StringFixed(2))
}

func TestAddLine_RejectsInvalidInput(t *testing.T) {
	cat := food5pct()
	price := decimal.RequireFromString("10.00")

	base, err := AddLine(Cart{}, "Apples", 1, price, cat)
	require.NoError(t, err)

	cases := []struct {
		name    string
		item    string
		qty     int
		price   decimal.Decimal
		wantErr error
	}{
		{"empty name", "", 1, price, ErrEmptyName},
		{"zero quantity", "Apples", 0, price, ErrInvalidQty},
		{"negative quantity", "Apples", -2, price, ErrInvalidQty},
		{"negative price", "Apples", 1, decimal.RequireFromString("-0.01"), ErrNegativePrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AddLine(base, tc.item, tc.qty, tc.price, cat)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, got.Lines, 1, "cart must be unchanged on rejection")
		})
	}
}

func TestRemoveLine(t *testing.T) {
	cat := food5pct()
	cart := Cart{}
	var err error
	for i := 0; i < 3; i++ {
		cart, err = AddLine(cart, fmt.Sprintf("Item %d", i), 1, decimal.NewFromInt(int64(i+1)), cat)
		require.NoError(t, err)
	}

	cart, err = RemoveLine(cart, 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "Item 0", cart.Lines[0].Name)
	assert.Equal(t, "Item 2", cart.Lines[1].Name)

	_, err = RemoveLine(cart, 5)
	assert.ErrorIs(t, err, ErrIndexRange)
	_, err = RemoveLine(cart, -1)
	assert.ErrorIs(t, err, ErrIndexRange)
	assert.Len(t, cart.Lines, 2, "cart must be unchanged on rejection")
}

func TestAggregate_EmptyCart(t *testing.T) {
	totals := Aggregate(Cart{})
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TotalTax.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestAggregate_MatchesExample(t *testing.T) {
	cart, err := AddLine(Cart{}, "Apples", 3, decimal.RequireFromString("10.00"), food5pct())
	require.NoError(t, err)

	totals := Aggregate(cart)
	assert.Equal(t, "30.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1.50", totals.TotalTax.StringFixed(2))
	assert.Equal(t, "31.50", totals.GrandTotal.StringFixed(2))
}

// Decimal accumulation keeps GrandTotal == Subtotal + TotalTax exact for
// arbitrary carts; this is where float accumulation would drift.
func TestAggregate_NoDriftOnRandomCarts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	categories := []model.Category{
		{ID: 1, Name: "Food", TaxRate: decimal.RequireFromString("0.05")},
		{ID: 2, Name: "Books", TaxRate: decimal.RequireFromString("0.00")},
		{ID: 3, Name: "Electronics", TaxRate: decimal.RequireFromString("0.21")},
		{ID: 4, Name: "Odd", TaxRate: decimal.RequireFromString("0.0725")},
	}

	for trial := 0; trial < 50; trial++ {
		cart := Cart{}
		lines := 1 + rng.Intn(50)
		for i := 0; i < lines; i++ {
			price := decimal.NewFromInt(int64(rng.Intn(10000))).Div(decimal.NewFromInt(100))
			qty := 1 + rng.Intn(9)
			var err error
			cart, err = AddLine(cart, fmt.Sprintf("Item %d", i), qty, price, categories[rng.Intn(len(categories))])
			require.NoError(t, err)
		}

		totals := Aggregate(cart)
		assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TotalTax)),
			"trial %d: grand total %s != subtotal %s + tax %s",
			trial, totals.GrandTotal, totals.Subtotal, totals.TotalTax)

		lineSum := decimal.Zero
		for _, line := range cart.Lines {
			lineSum = lineSum.Add(line.Total)
		}
		assert.True(t, totals.GrandTotal.Equal(lineSum), "trial %d: line totals disagree with aggregate", trial)
	}
}
