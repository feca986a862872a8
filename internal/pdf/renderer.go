package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// InvoiceLine is one rendered table row, column order fixed as
// [Item, Category, Qty, Price, Tax, Total].
type InvoiceLine struct {
	Item     string
	Category string
	Qty      int
	Price    string
	Tax      string
	Total    string
}

// InvoiceDocument carries everything the PDF needs; amounts arrive
// pre-formatted so the renderer stays free of money math.
type InvoiceDocument struct {
	InvoiceID  uint
	IssuedAt   string
	Lines      []InvoiceLine
	Subtotal   string
	TotalTax   string
	GrandTotal string
}

// Renderer turns a committed invoice into a downloadable PDF.
type Renderer interface {
	Render(doc InvoiceDocument) ([]byte, error)
}

type marotoRenderer struct{}

func NewRenderer() Renderer {
	return &marotoRenderer{}
}

func (r *marotoRenderer) Render(invoice InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(12,
		text.NewCol(6, fmt.Sprintf("Invoice ID: %d", invoice.InvoiceID), props.Text{Size: 10}),
		text.NewCol(6, "Date: "+invoice.IssuedAt, props.Text{Size: 10, Align: align.Right}),
	)

	m.AddRow(3, line.NewCol(12))

	// Table header
	m.AddRow(8,
		text.NewCol(3, "Item", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Category", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(1, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Tax", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, row := range invoice.Lines {
		m.AddRow(7,
			text.NewCol(3, row.Item, props.Text{Size: 9}),
			text.NewCol(2, row.Category, props.Text{Size: 9}),
			text.NewCol(1, fmt.Sprintf("%d", row.Qty), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, "$"+row.Price, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, "$"+row.Tax, props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, "$"+row.Total, props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(3, line.NewCol(12))

	// Summary
	m.AddRow(7,
		text.NewCol(12, "Subtotal: $"+invoice.Subtotal, props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(7,
		text.NewCol(12, "Total Tax: $"+invoice.TotalTax, props.Text{Size: 10, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(12, "Grand Total: $"+invoice.GrandTotal, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Align: align.Right,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return doc.GetBytes(), nil
}
