package quotations

import "github.com/shopspring/decimal"

// Breakdown is the result of a quotation computation. Each field is a
// monetary value rounded to 2 decimal places.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Markup   float64 `json:"markup"`
	Total    float64 `json:"total"`
}

// Compute derives the quotation price from its inputs:
//
//	subtotal       = area * rate_per_sqft + material_cost
//	gst            = subtotal * gst_percent / 100
//	total_with_gst = subtotal + gst
//	markup         = total_with_gst * markup_percent / 100
//	total          = total_with_gst + markup
//
// Arithmetic is exact decimal; returned fields are rounded to 2 places.
func Compute(in Inputs) Breakdown {
	hundred := decimal.NewFromInt(100)

	area := decimal.NewFromFloat(in.Area)
	rate := decimal.NewFromFloat(in.RatePerSqft)
	material := decimal.NewFromFloat(in.MaterialCost)
	gstPct := decimal.NewFromFloat(in.GSTPercent)
	markupPct := decimal.NewFromFloat(in.MarkupPercent)

	subtotal := area.Mul(rate).Add(material)
	gst := subtotal.Mul(gstPct).Div(hundred)
	totalWithGST := subtotal.Add(gst)
	markup := totalWithGST.Mul(markupPct).Div(hundred)
	total := totalWithGST.Add(markup)

	return Breakdown{
		Subtotal: subtotal.Round(2).InexactFloat64(),
		GST:      gst.Round(2).InexactFloat64(),
		Markup:   markup.Round(2).InexactFloat64(),
		Total:    total.Round(2).InexactFloat64(),
	}
}
