// Package pricing converts an invoice line item between its entered price and
// its discount/surcharge/tax-adjusted total. Both directions are pure over
// the item fields and a tax-rate table.
package pricing

import "math"

// Item carries the line-item fields the computation reads.
type Item struct {
	Price               float64
	Total               float64
	DiscountPercentage  int
	SurchargePercentage int
	TaxTypeID           int64
}

// TaxType is one row of the tax-rate reference table. Rate is a percentage.
type TaxType struct {
	ID   int64
	Rate float64
}

// TotalFromPrice computes the billed total from the entered price. Step order
// is fixed: discount, then surcharge, then tax, then rounding. Surcharge and
// tax only apply while the running value is positive, and an unknown tax type
// id silently skips the tax step.
func TotalFromPrice(item Item, taxTypes []TaxType) float64 {
	value := item.Price

	if item.DiscountPercentage > 0 {
		value = value * (float64(100-item.DiscountPercentage) / 100)
	}

	if item.SurchargePercentage > 0 && value > 0 {
		value += value * float64(item.SurchargePercentage) / 100
	}

	if item.TaxTypeID > 0 && value > 0 {
		if rate, ok := lookupRate(taxTypes, item.TaxTypeID); ok {
			value += value * rate / 100
		}
	}

	return round2(value)
}

// PriceFromTotal computes the entered price back from the billed total. The
// reversal order is the inverse of TotalFromPrice but the guards are not
// symmetric: tax and surcharge divide regardless of the running value's sign,
// and a 100% discount divides by zero and propagates +Inf. Callers that need
// the historical behavior depend on both, so neither is "fixed" here.
func PriceFromTotal(item Item, taxTypes []TaxType) float64 {
	value := item.Total

	if item.TaxTypeID > 0 {
		if rate, ok := lookupRate(taxTypes, item.TaxTypeID); ok && rate >= 0 {
			value = value / (1 + rate/100)
		}
	}

	if item.SurchargePercentage > 0 {
		value = value / (1 + float64(item.SurchargePercentage)/100)
	}

	if item.DiscountPercentage > 0 {
		value = value * (100 / float64(100-item.DiscountPercentage))
	}

	return round2(value)
}

func lookupRate(taxTypes []TaxType, id int64) (float64, bool) {
	for _, t := range taxTypes {
		if t.ID == id {
			return t.Rate, true
		}
	}
	return 0, false
}

// round2 rounds to two decimals, half away from zero, matching fixed-point
// formatting of the result. Non-finite values pass through.
func round2(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v*100) / 100
}
