package notionsync

import (
	"github.com/jomei/notionapi"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/summary"
)

// MonthSummaryToNotionProperties converts a MonthSummary to Notion properties.
// The month key (YYYY-MM) is the page title, which keeps the sync idempotent.
func MonthSummaryToNotionProperties(m summary.MonthSummary) notionapi.Properties {
	props := notionapi.Properties{
		"Month": notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{
					Type: notionapi.ObjectTypeText,
					Text: &notionapi.Text{
						Content: m.Month.String(),
					},
				},
			},
		},
		"Purchases": notionapi.NumberProperty{
			Number: m.TotalPurchases.InexactFloat64(),
		},
		"Fees": notionapi.NumberProperty{
			Number: m.TotalFees.InexactFloat64(),
		},
		"Payments": notionapi.NumberProperty{
			Number: m.TotalPayments.InexactFloat64(),
		},
		"Invoice Total": notionapi.NumberProperty{
			Number: m.InvoiceTotal.InexactFloat64(),
		},
		"Net Balance": notionapi.NumberProperty{
			Number: m.NetBalance.InexactFloat64(),
		},
	}

	if len(m.CategoryTotals) > 0 {
		props["Top Category"] = notionapi.SelectProperty{
			Select: notionapi.Option{
				Name: m.CategoryTotals[0].Category,
			},
		}
	}

	if len(m.TopPurchases) > 0 {
		props["Top Purchase"] = notionapi.RichTextProperty{
			RichText: []notionapi.RichText{
				{
					Type: notionapi.ObjectTypeText,
					Text: &notionapi.Text{
						Content: m.TopPurchases[0].Title,
					},
				},
			},
		}
	}

	return props
}

// extractMonthKey reads the Month title property back out of a Notion page.
// Returns "" when the page has no usable title.
func extractMonthKey(page notionapi.Page) string {
	prop, ok := page.Properties["Month"]
	if !ok {
		return ""
	}

	title, ok := prop.(*notionapi.TitleProperty)
	if !ok {
		return ""
	}
	if len(title.Title) == 0 {
		return ""
	}

	return title.Title[0].PlainText
}
