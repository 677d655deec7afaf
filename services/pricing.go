package services

// All amounts are cents; tax rates are basis points.

const (
	ExtraProteinFee    int64 = 299 // per unit
	ExtraVegetablesFee int64 = 199 // per unit

	FreeShippingMin int64 = 5000
	FlatShippingFee int64 = 799

	MinQtyPerLine = 1
	MaxQtyPerLine = 10
)

// Sales-tax table by state code; unlisted states fall back to the default.
var stateTaxBps = map[string]int64{
	"CA": 875,
	"NY": 800,
	"TX": 625,
	"WA": 650,
	"FL": 600,
	"IL": 625,
	"PA": 600,
	"AZ": 560,
}

const defaultTaxBps int64 = 500

func TaxRateBps(state string) int64 {
	if bps, ok := stateTaxBps[state]; ok {
		return bps
	}
	return defaultTaxBps
}

func ClampQty(qty int) int {
	if qty < MinQtyPerLine {
		return MinQtyPerLine
	}
	if qty > MaxQtyPerLine {
		return MaxQtyPerLine
	}
	return qty
}

// PriceLine is one cart/checkout line as pricing sees it.
type PriceLine struct {
	UnitPrice       int64
	Qty             int
	ExtraProtein    bool
	ExtraVegetables bool
}

func (l PriceLine) UnitSurcharge() int64 {
	var s int64
	if l.ExtraProtein {
		s += ExtraProteinFee
	}
	if l.ExtraVegetables {
		s += ExtraVegetablesFee
	}
	return s
}

func (l PriceLine) Total() int64 {
	return (l.UnitPrice + l.UnitSurcharge()) * int64(l.Qty)
}

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// ComputeTotals prices a non-empty set of lines for the given shipping
// state. Tax is half-up rounded to whole cents.
func ComputeTotals(lines []PriceLine, state string) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += l.Total()
	}

	shipping := FlatShippingFee
	if subtotal >= FreeShippingMin {
		shipping = 0
	}

	tax := (subtotal*TaxRateBps(state) + 5000) / 10000

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
