package classify

import (
	"regexp"
	"strconv"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
)

// installmentPattern matches the "Parcela N/M" marker Nubank embeds in
// installment-plan purchase titles.
var installmentPattern = regexp.MustCompile(`(?i)parcela\s+(\d+)/(\d+)`)

// ParseInstallment extracts the N-of-M installment marker from a title.
// Returns nil when the title has no marker, or when the extracted pair is
// nonsensical (index outside 1..total); a malformed marker is treated the
// same as no marker.
func ParseInstallment(title string) *statement.Installment {
	m := installmentPattern.FindStringSubmatch(title)
	if m == nil {
		return nil
	}
	index, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	total, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	if index < 1 || index > total {
		return nil
	}
	return &statement.Installment{Index: index, Total: total}
}
