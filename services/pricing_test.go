package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		lines []PriceLine
		state string
		want  Totals
	}{
		{
			name:  "worked example: two green curries to CA",
			lines: []PriceLine{{UnitPrice: 2499, Qty: 2}},
			state: "CA",
			want:  Totals{Subtotal: 4998, Shipping: 799, Tax: 437, Total: 6234},
		},
		{
			name:  "free shipping at threshold",
			lines: []PriceLine{{UnitPrice: 2500, Qty: 2}},
			state: "CA",
			want:  Totals{Subtotal: 5000, Shipping: 0, Tax: 438, Total: 5438},
		},
		{
			name:  "one cent under threshold still pays shipping",
			lines: []PriceLine{{UnitPrice: 4999, Qty: 1}},
			state: "FL",
			want:  Totals{Subtotal: 4999, Shipping: 799, Tax: 300, Total: 6098},
		},
		{
			name:  "unlisted state falls back to default rate",
			lines: []PriceLine{{UnitPrice: 1000, Qty: 1}},
			state: "ZZ",
			want:  Totals{Subtotal: 1000, Shipping: 799, Tax: 50, Total: 1849},
		},
		{
			name: "customization surcharges are per unit",
			lines: []PriceLine{
				{UnitPrice: 1999, Qty: 2, ExtraProtein: true},
				{UnitPrice: 1499, Qty: 1, ExtraVegetables: true},
			},
			state: "TX",
			// (1999+299)*2 + (1499+199)*1 = 4596 + 1698 = 6294
			want: Totals{Subtotal: 6294, Shipping: 0, Tax: 393, Total: 6687},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines, tt.state)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.Total, got.Subtotal+got.Shipping+got.Tax)
		})
	}
}

func TestClampQty(t *testing.T) {
	assert.Equal(t, 1, ClampQty(0))
	assert.Equal(t, 1, ClampQty(-5))
	assert.Equal(t, 1, ClampQty(1))
	assert.Equal(t, 7, ClampQty(7))
	assert.Equal(t, 10, ClampQty(10))
	assert.Equal(t, 10, ClampQty(99))
}

func TestTaxRateBps(t *testing.T) {
	assert.Equal(t, int64(875), TaxRateBps("CA"))
	assert.Equal(t, int64(500), TaxRateBps("MT"))
	assert.Equal(t, int64(500), TaxRateBps(""))
}
