package classify

import "testing"

func TestParseInstallment(t *testing.T) {
	tests := []struct {
		name  string
		title string
		index int
		total int
		want  bool
	}{
		{name: "standard marker", title: "Posto Shell Combustivel Parcela 2/6", index: 2, total: 6, want: true},
		{name: "case insensitive", title: "magazine luiza PARCELA 10/12", index: 10, total: 12, want: true},
		{name: "single installment", title: "Loja X Parcela 1/1", index: 1, total: 1, want: true},
		{name: "no marker", title: "Supermercado Mateus"},
		{name: "word without numbers", title: "compra parcelada"},
		{name: "zero index rejected", title: "Loja Parcela 0/6"},
		{name: "index beyond total rejected", title: "Loja Parcela 7/6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInstallment(tt.title)
			if (got != nil) != tt.want {
				t.Fatalf("ParseInstallment(%q) = %v, want present=%v", tt.title, got, tt.want)
			}
			if got == nil {
				return
			}
			if got.Index != tt.index || got.Total != tt.total {
				t.Errorf("ParseInstallment(%q) = %d/%d, want %d/%d", tt.title, got.Index, got.Total, tt.index, tt.total)
			}
		})
	}
}
