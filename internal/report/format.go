// Package report renders aggregated summaries for people: a console text
// view and a paginated PDF document. It contains no aggregation logic; both
// renderers consume the same summary structs.
package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders an amount in Brazilian currency notation, always as an
// absolute value: R$ 1.234,56. Matches the statement's own formatting.
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + groupThousands(d.Abs().StringFixed(2))
}

// FormatBRLSigned is FormatBRL with an explicit leading sign, used for net
// balances where direction matters.
func FormatBRLSigned(d decimal.Decimal) string {
	sign := "+ "
	if d.IsNegative() {
		sign = "- "
	}
	return sign + FormatBRL(d)
}

// groupThousands converts "1234567.89" to "1.234.567,89".
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	n := len(intPart)
	for i, r := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// Truncate shortens a description to at most limit characters, appending an
// ellipsis marker, and flattens embedded newlines.
func Truncate(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
