package pdf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesPDF(t *testing.T) {
	doc := InvoiceDocument{
		InvoiceID: 7,
		IssuedAt:  "2025-11-02",
		Lines: []InvoiceLine{
			{Item: "Apples", Category: "Food", Qty: 3, Price: "10.00", Tax: "1.50", Total: "31.50"},
			{Item: "Old Stock", Category: "Uncategorized", Qty: 1, Price: "2.00", Tax: "0.00", Total: "2.00"},
		},
		Subtotal:   "32.00",
		TotalTax:   "1.50",
		GrandTotal: "33.50",
	}

	data, err := NewRenderer().Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.NotEmpty(t, data)
}

func TestRender_EmptyLineList(t *testing.T) {
	data, err := NewRenderer().Render(InvoiceDocument{
		InvoiceID:  1,
		IssuedAt:   "2025-11-02",
		Subtotal:   "0.00",
		TotalTax:   "0.00",
		GrandTotal: "0.00",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
