package classify

// Rule pairs a spending category with the keyword phrases that select it.
// Matching is a case-insensitive substring search against the transaction
// title.
type Rule struct {
	Category string
	Keywords []string
}

// RuleTable is an ordered list of rules. Order is part of the contract:
// the first category with a matching keyword wins, so a keyword listed under
// two categories (uber and 99 appear under both Subscriptions and Transport)
// always resolves to the earlier one.
type RuleTable []Rule

// FallbackCategory is assigned to purchases matching no rule.
const FallbackCategory = "Other"

// DefaultRules returns the built-in rule table for Nubank statement titles.
// Keywords are the merchant names and terms that show up in Brazilian credit
// card exports.
func DefaultRules() RuleTable {
	return RuleTable{
		{Category: "Groceries", Keywords: []string{"supermercado", "mateus", "mix", "atacadao"}},
		{Category: "Fuel", Keywords: []string{"posto", "combustível", "combustivel", "gasolina", "shell", "ipiranga"}},
		{Category: "Pharmacy", Keywords: []string{"drogaria", "farmácia", "farmacia", "paguemenos", "drogasil"}},
		{Category: "Dining", Keywords: []string{"pizzaria", "espeto", "restaurante", "ifood", "lanche", "mcdonalds", "burger king"}},
		{Category: "Subscriptions", Keywords: []string{"paypal", "contabo", "aws", "google", "uber", "99", "spotify", "netflix"}},
		{Category: "Transport", Keywords: []string{"uber", "99", "passagem", "onibus"}},
		{Category: "Utilities", Keywords: []string{"energia", "agua", "aluguel", "internet"}},
	}
}
