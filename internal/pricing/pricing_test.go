package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var rates = []TaxType{
	{ID: 1, Rate: 21},
	{ID: 2, Rate: 10},
	{ID: 3, Rate: 4},
	{ID: 4, Rate: 0},
}

func TestTotalFromPrice_DiscountThenTax(t *testing.T) {
	total := TotalFromPrice(Item{
		Price:              100,
		DiscountPercentage: 10,
		TaxTypeID:          1,
	}, rates)

	// 100 -> 90 after discount -> 108.90 with 21% tax
	assert.Equal(t, 108.90, total)
}

func TestTotalFromPrice_SurchargeBeforeTax(t *testing.T) {
	total := TotalFromPrice(Item{
		Price:               100,
		SurchargePercentage: 5,
		TaxTypeID:           2,
	}, rates)

	// 100 -> 105 after surcharge -> 115.50 with 10% tax
	assert.Equal(t, 115.50, total)
}

func TestTotalFromPrice_UnknownTaxTypeSkipsTax(t *testing.T) {
	total := TotalFromPrice(Item{Price: 50, TaxTypeID: 999}, rates)
	assert.Equal(t, 50.0, total)
}

func TestTotalFromPrice_ZeroRateKeepsValue(t *testing.T) {
	total := TotalFromPrice(Item{Price: 50, TaxTypeID: 4}, rates)
	assert.Equal(t, 50.0, total)
}

func TestTotalFromPrice_NegativeValueSkipsSurchargeAndTax(t *testing.T) {
	total := TotalFromPrice(Item{
		Price:               -100,
		SurchargePercentage: 5,
		TaxTypeID:           1,
	}, rates)

	// surcharge and tax only apply to a positive running value
	assert.Equal(t, -100.0, total)
}

func TestPriceFromTotal_InvertsTaxAndDiscount(t *testing.T) {
	price := PriceFromTotal(Item{
		Total:              108.90,
		DiscountPercentage: 10,
		TaxTypeID:          1,
	}, rates)

	assert.Equal(t, 100.0, price)
}

func TestPriceFromTotal_NegativeTotalStillDivides(t *testing.T) {
	// the inverse path does not carry the positivity guards of the forward
	// path, so a negative total is still divided by the tax factor
	price := PriceFromTotal(Item{Total: -121, TaxTypeID: 1}, rates)
	assert.Equal(t, -100.0, price)
}

func TestPriceFromTotal_FullDiscountYieldsInf(t *testing.T) {
	price := PriceFromTotal(Item{Total: 50, DiscountPercentage: 100}, rates)
	assert.True(t, math.IsInf(price, 1))
}

func TestRoundTrip_NoAdjustmentsIsExact(t *testing.T) {
	item := Item{Price: 42.37}
	total := TotalFromPrice(item, rates)
	assert.Equal(t, 42.37, total)

	item.Total = total
	assert.Equal(t, 42.37, PriceFromTotal(item, rates))
}

func TestRoundTrip_WithTaxIsApproximate(t *testing.T) {
	item := Item{Price: 33.33, DiscountPercentage: 7, SurchargePercentage: 3, TaxTypeID: 1}
	item.Total = TotalFromPrice(item, rates)

	back := PriceFromTotal(item, rates)
	assert.InDelta(t, item.Price, back, 0.02)
}

func TestTotalFromPrice_MonotonicInPrice(t *testing.T) {
	lo := TotalFromPrice(Item{Price: 10, TaxTypeID: 1}, rates)
	hi := TotalFromPrice(Item{Price: 20, TaxTypeID: 1}, rates)
	assert.Less(t, lo, hi)
}

func TestTotalFromPrice_NonIncreasingInDiscount(t *testing.T) {
	prev := TotalFromPrice(Item{Price: 100, TaxTypeID: 1}, rates)
	for discount := 1; discount <= 100; discount++ {
		cur := TotalFromPrice(Item{Price: 100, DiscountPercentage: discount, TaxTypeID: 1}, rates)
		assert.LessOrEqual(t, cur, prev, "discount %d", discount)
		prev = cur
	}
}

func TestTotalFromPrice_NonDecreasingInSurcharge(t *testing.T) {
	prev := TotalFromPrice(Item{Price: 100, TaxTypeID: 1}, rates)
	for surcharge := 1; surcharge <= 50; surcharge++ {
		cur := TotalFromPrice(Item{Price: 100, SurchargePercentage: surcharge, TaxTypeID: 1}, rates)
		assert.GreaterOrEqual(t, cur, prev, "surcharge %d", surcharge)
		prev = cur
	}
}

func TestTotalFromPrice_NonDecreasingInTaxRate(t *testing.T) {
	// rate ids ordered by ascending rate: exempt, 4%, 10%, 21%
	ordered := []int64{4, 3, 2, 1}
	prev := TotalFromPrice(Item{Price: 100, TaxTypeID: ordered[0]}, rates)
	for _, id := range ordered[1:] {
		cur := TotalFromPrice(Item{Price: 100, TaxTypeID: id}, rates)
		assert.GreaterOrEqual(t, cur, prev, "tax type %d", id)
		prev = cur
	}
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 1.13, round2(1.125))
	assert.Equal(t, -1.13, round2(-1.125))
}
