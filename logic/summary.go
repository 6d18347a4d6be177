package logic

import (
	"fmt"
	"strings"
)

const (
	EmptyCartSummary = "Cart is empty"
	summaryRuleWidth = 50
)

// Summary renders a human readable report of the cart, one line per product
// in the order first added. Amounts are shown in dollars to two decimals.
func (c *Cart) Summary() string {
	if c.IsEmpty() {
		return EmptyCartSummary
	}

	rule := strings.Repeat("=", summaryRuleWidth)
	pricing := c.Breakdown()

	var b strings.Builder
	b.WriteString("Cart Summary:\n")
	b.WriteString(rule + "\n")
	for _, p := range c.order {
		quantity := c.items[p]
		fmt.Fprintf(&b, "%s x%d = $%s\n", p.name, quantity, lineTotal(p, quantity).StringFixed(2))
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Subtotal: $%s\n", pricing.Subtotal.StringFixed(2))
	if pricing.Discount.IsPositive() {
		fmt.Fprintf(&b, "Discount: -$%s\n", pricing.Discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s\n", pricing.Total.StringFixed(2))
	fmt.Fprintf(&b, "Total Items: %d", c.ItemCount())
	return b.String()
}
