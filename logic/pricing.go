package logic

import "github.com/shopspring/decimal"

// PriceBreakdown is the exact decimal pricing of a cart at one point in time.
type PriceBreakdown struct {
	Subtotal           decimal.Decimal
	PercentageDiscount decimal.Decimal
	PromotionDiscount  decimal.Decimal
	// Discount is PercentageDiscount + PromotionDiscount, unclamped.
	Discount decimal.Decimal
	// Total is Subtotal - Discount, never below zero.
	Total decimal.Decimal
}

// Breakdown prices the cart. Both discounts are computed from the same
// undiscounted subtotal, so the order in which they were configured does not
// matter.
func (c *Cart) Breakdown() PriceBreakdown {
	subtotal := decimal.Zero
	promotion := decimal.Zero
	for p, quantity := range c.items {
		units := decimal.NewFromInt(int64(quantity))
		subtotal = subtotal.Add(lineTotal(p, quantity))
		if amount, ok := c.promotions[p.name]; ok {
			promotion = promotion.Add(decimal.NewFromFloat(amount).Mul(units))
		}
	}

	percentage := subtotal.Mul(decimal.NewFromFloat(c.discountPercentage)).Shift(-2)
	discount := percentage.Add(promotion)

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return PriceBreakdown{
		Subtotal:           subtotal,
		PercentageDiscount: percentage,
		PromotionDiscount:  promotion,
		Discount:           discount,
		Total:              total,
	}
}

// Subtotal is the sum of price x quantity before any discount.
func (c *Cart) Subtotal() float64 {
	return c.Breakdown().Subtotal.InexactFloat64()
}

// DiscountAmount is the percentage discount on the subtotal plus every
// promotion amount times the quantity of the products it names.
func (c *Cart) DiscountAmount() float64 {
	return c.Breakdown().Discount.InexactFloat64()
}

// Total is the subtotal less all discounts, floored at zero.
func (c *Cart) Total() float64 {
	return c.Breakdown().Total.InexactFloat64()
}

func lineTotal(p Product, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(p.price).Mul(decimal.NewFromInt(int64(quantity)))
}
