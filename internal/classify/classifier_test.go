package classify

import (
	"testing"

	"github.com/jleandrocampos/nubank-analysis-invoice/internal/statement"
	"github.com/shopspring/decimal"
)

func TestClassify_TypeDetection(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name         string
		title        string
		wantType     statement.TxType
		wantCategory string
	}{
		{
			name:         "payment marker",
			title:        "Pagamento recebido em 01/02",
			wantType:     statement.TypePayment,
			wantCategory: "Payment",
		},
		{
			name:         "fee marker",
			title:        "IOF Transaction",
			wantType:     statement.TypeFee,
			wantCategory: "Fee",
		},
		{
			name:         "fee marker lowercase",
			title:        "iof de compra internacional",
			wantType:     statement.TypeFee,
			wantCategory: "Fee",
		},
		{
			name:         "grocery purchase",
			title:        "Supermercado Mix Compra 1",
			wantType:     statement.TypePurchase,
			wantCategory: "Groceries",
		},
		{
			name:         "fuel purchase with installment text",
			title:        "Posto Shell Combustivel Parcela 2/6",
			wantType:     statement.TypePurchase,
			wantCategory: "Fuel",
		},
		{
			name:         "unmatched purchase falls back to Other",
			title:        "Loja Desconhecida Ltda",
			wantType:     statement.TypePurchase,
			wantCategory: "Other",
		},
		{
			name:         "empty title falls back to Other",
			title:        "",
			wantType:     statement.TypePurchase,
			wantCategory: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotCategory := c.Classify(tt.title)
			if gotType != tt.wantType {
				t.Errorf("type = %q, want %q", gotType, tt.wantType)
			}
			if gotCategory != tt.wantCategory {
				t.Errorf("category = %q, want %q", gotCategory, tt.wantCategory)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewDefault()
	titles := []string{
		"Pagamento recebido",
		"IOF compra exterior",
		"Uber Trip",
		"mercadinho da esquina",
	}
	for _, title := range titles {
		t1, cat1 := c.Classify(title)
		t2, cat2 := c.Classify(title)
		if t1 != t2 || cat1 != cat2 {
			t.Errorf("classification of %q not stable: (%s,%s) then (%s,%s)", title, t1, cat1, t2, cat2)
		}
	}
}

func TestClassify_TableOrderBreaksTies(t *testing.T) {
	// uber is listed under Subscriptions before Transport in the default
	// table, so it must always resolve to Subscriptions.
	c := NewDefault()
	_, cat := c.Classify("Uber do aeroporto")
	if cat != "Subscriptions" {
		t.Errorf("uber resolved to %q, want Subscriptions (earlier table entry)", cat)
	}

	// With a reordered table the same title resolves to the other bucket.
	reordered := RuleTable{
		{Category: "Transport", Keywords: []string{"uber"}},
		{Category: "Subscriptions", Keywords: []string{"uber"}},
	}
	_, cat = New(reordered).Classify("Uber do aeroporto")
	if cat != "Transport" {
		t.Errorf("reordered table resolved to %q, want Transport", cat)
	}
}

func TestClassify_CustomRuleTable(t *testing.T) {
	c := New(RuleTable{
		{Category: "Books", Keywords: []string{"livraria"}},
	})
	_, cat := c.Classify("Livraria Cultura")
	if cat != "Books" {
		t.Errorf("category = %q, want Books", cat)
	}
	_, cat = c.Classify("Supermercado Mateus")
	if cat != "Other" {
		t.Errorf("category = %q, want Other with custom table", cat)
	}
}

func TestApply_EnrichesInPlace(t *testing.T) {
	txs := []statement.Transaction{
		{Title: "Posto Shell Combustivel Parcela 2/6", Amount: decimal.RequireFromString("45.00")},
		{Title: "Pagamento recebido", Amount: decimal.RequireFromString("-500.00")},
	}

	NewDefault().Apply(txs)

	if txs[0].Type != statement.TypePurchase || txs[0].Category != "Fuel" {
		t.Errorf("tx[0] = %s/%s, want Purchase/Fuel", txs[0].Type, txs[0].Category)
	}
	if !txs[0].IsInstallment() {
		t.Fatal("tx[0] should carry an installment marker")
	}
	if txs[0].Installment.Index != 2 || txs[0].Installment.Total != 6 {
		t.Errorf("installment = %d/%d, want 2/6", txs[0].Installment.Index, txs[0].Installment.Total)
	}
	if txs[1].Type != statement.TypePayment || txs[1].IsInstallment() {
		t.Errorf("tx[1] = %s installment=%v, want Payment without installment", txs[1].Type, txs[1].IsInstallment())
	}
}
