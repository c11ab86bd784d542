// Package classify assigns a transaction type and spending category to
// statement entries using ordered keyword rules against the free-text title.
package classify

import (
	"strings"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
)

// Marker phrases for non-purchase entries in Nubank statements.
const (
	paymentMarker = "pagamento recebido"
	feeMarker     = "iof"
)

// Classifier derives transaction type and category from titles. It holds an
// immutable rule table fixed at construction, so tests can supply alternate
// tables and repeated classification of the same title is always identical.
type Classifier struct {
	rules RuleTable
}

// New returns a Classifier using the given rule table.
func New(rules RuleTable) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefault returns a Classifier with the built-in rule table.
func NewDefault() *Classifier {
	return New(DefaultRules())
}

// Classify determines type and category for a title. Type detection runs
// first, in fixed order: payment marker, then fee marker, then purchase.
// Only purchases get a keyword category; payments and fees roll up under
// their own type label so they never land in the Other bucket.
func (c *Classifier) Classify(title string) (statement.TxType, string) {
	lower := strings.ToLower(title)

	if strings.Contains(lower, paymentMarker) {
		return statement.TypePayment, string(statement.TypePayment)
	}
	if strings.Contains(lower, feeMarker) {
		return statement.TypeFee, string(statement.TypeFee)
	}
	return statement.TypePurchase, c.category(lower)
}

func (c *Classifier) category(lowerTitle string) string {
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lowerTitle, kw) {
				return rule.Category
			}
		}
	}
	return FallbackCategory
}

// Apply classifies every transaction in place: type, category, and the
// installment marker. Transactions are not otherwise modified.
func (c *Classifier) Apply(txs []statement.Transaction) {
	for i := range txs {
		txs[i].Type, txs[i].Category = c.Classify(txs[i].Title)
		txs[i].Installment = ParseInstallment(txs[i].Title)
	}
}
