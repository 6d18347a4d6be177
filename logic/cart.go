package logic

import (
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Cart is a single-owner shopping cart. It is not safe for concurrent use;
// callers sharing a cart across goroutines must serialise access themselves.
//
// Products are addressed two ways: by value, through a direct map lookup,
// and by name, through an O(n) case-sensitive scan of the items in the order
// they were first added.
type Cart struct {
	id    uuid.UUID
	log   *zap.Logger
	items map[Product]int
	// keys of items in insertion order
	order              []Product
	promotions         map[string]float64
	discountPercentage float64
}

// NewCart creates an empty cart.
func NewCart(opts ...Option) *Cart {
	c := &Cart{
		id:         uuid.New(),
		log:        zap.NewNop(),
		items:      make(map[Product]int),
		promotions: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.Stringer("cart_id", c.id))
	return c
}

func (c *Cart) ID() uuid.UUID {
	return c.id
}

// AddByName adds a zero-priced product in the DefaultCategory with quantity 1.
// It returns false without changing the cart if any product with that exact
// name is already present.
func (c *Cart) AddByName(name string) (bool, error) {
	if err := RequireNotEmptyString(name, ErrMsgInvalidProduct); err != nil {
		return false, c.rejected("add by name", err)
	}
	if c.ContainsName(name) {
		c.log.Debug("product name already in cart", zap.String("product", name))
		return false, nil
	}
	product, err := NewProduct(name, 0)
	if err != nil {
		return false, c.rejected("add by name", err)
	}
	c.put(product, 1)
	return true, nil
}

// AddProduct adds a single unit of p.
func (c *Cart) AddProduct(p Product) error {
	return c.AddProductQuantity(p, 1)
}

// AddProductQuantity adds quantity units of p, accumulating onto any quantity
// already held for an equal product.
func (c *Cart) AddProductQuantity(p Product, quantity int) error {
	if p.IsZero() {
		return c.rejected("add product", NewInvalidArgument(ErrMsgProductRequired))
	}
	if err := RequirePositive(quantity, ErrMsgQuantityPositive); err != nil {
		return c.rejected("add product", err)
	}
	held := c.items[p]
	if held > math.MaxInt-quantity {
		return c.rejected("add product", NewInvalidArgument(ErrMsgQuantityTooLarge))
	}
	if err := c.requireCapacity(p, held+quantity); err != nil {
		return c.rejected("add product", err)
	}
	c.put(p, held+quantity)
	return nil
}

// UpdateQuantity sets (not increments) the quantity of p. A quantity of 0
// removes the product. It returns false if p is not in the cart.
func (c *Cart) UpdateQuantity(p Product, quantity int) (bool, error) {
	if p.IsZero() {
		return false, c.rejected("update quantity", NewInvalidArgument(ErrMsgProductRequired))
	}
	if err := RequireNonNegative(quantity, ErrMsgQuantityNegative); err != nil {
		return false, c.rejected("update quantity", err)
	}
	if _, ok := c.items[p]; !ok {
		return false, nil
	}
	if quantity == 0 {
		c.remove(p)
		return true, nil
	}
	if err := c.requireCapacity(p, quantity); err != nil {
		return false, c.rejected("update quantity", err)
	}
	c.put(p, quantity)
	return true, nil
}

// requireCapacity checks that holding quantity units of p keeps ItemCount
// representable as an int.
func (c *Cart) requireCapacity(p Product, quantity int) error {
	others := c.ItemCount() - c.items[p]
	if others > math.MaxInt-quantity {
		return NewInvalidArgument(ErrMsgQuantityTooLarge)
	}
	return nil
}

// RemoveByName removes the earliest added product whose name equals name.
func (c *Cart) RemoveByName(name string) bool {
	if name == "" {
		return false
	}
	for _, p := range c.order {
		if p.name == name {
			c.remove(p)
			return true
		}
	}
	return false
}

// RemoveProduct removes p entirely, whatever its quantity.
func (c *Cart) RemoveProduct(p Product) bool {
	if _, ok := c.items[p]; !ok {
		return false
	}
	c.remove(p)
	return true
}

// RemoveProductUnit removes one unit of p, dropping it once the last unit goes.
func (c *Cart) RemoveProductUnit(p Product) bool {
	quantity, ok := c.items[p]
	if !ok {
		return false
	}
	if quantity > 1 {
		c.put(p, quantity-1)
		return true
	}
	c.remove(p)
	return true
}

// Clear empties the items. Promotions and the percentage discount survive.
func (c *Cart) Clear() {
	c.items = make(map[Product]int)
	c.order = nil
	c.log.Debug("cart cleared")
}

// AddPromotion sets a fixed per-unit discount for products named name,
// replacing any previous promotion for that name. The name need not be in the
// cart.
func (c *Cart) AddPromotion(name string, amount float64) error {
	if err := RequireNotEmptyString(name, ErrMsgProductNameRequired); err != nil {
		return c.rejected("add promotion", err)
	}
	if err := RequireFinite(amount, ErrMsgPromotionNotFinite); err != nil {
		return c.rejected("add promotion", err)
	}
	if err := RequireNonNegative(amount, ErrMsgPromotionNegative); err != nil {
		return c.rejected("add promotion", err)
	}
	c.promotions[name] = amount
	c.log.Debug("promotion set", zap.String("product", name), zap.Float64("amount", amount))
	return nil
}

// RemovePromotion deletes the promotion for name, if any.
func (c *Cart) RemovePromotion(name string) {
	if _, ok := c.promotions[name]; !ok {
		return
	}
	delete(c.promotions, name)
	c.log.Debug("promotion removed", zap.String("product", name))
}

// ClearPromotions removes every promotion and resets the percentage discount.
func (c *Cart) ClearPromotions() {
	c.promotions = make(map[string]float64)
	c.discountPercentage = 0
	c.log.Debug("promotions cleared")
}

// ApplyDiscount sets the cart-wide percentage discount, 0 to 100 inclusive.
func (c *Cart) ApplyDiscount(percentage float64) error {
	if err := RequireInRange(percentage, 0, 100, ErrMsgDiscountOutOfRange); err != nil {
		return c.rejected("apply discount", err)
	}
	c.discountPercentage = percentage
	c.log.Debug("discount applied", zap.Float64("percentage", percentage))
	return nil
}

func (c *Cart) DiscountPercentage() float64 {
	return c.discountPercentage
}

// Quantity returns the units held for p, or 0.
func (c *Cart) Quantity(p Product) int {
	return c.items[p]
}

func (c *Cart) Contains(p Product) bool {
	_, ok := c.items[p]
	return ok
}

// ContainsName reports whether any product is named exactly name.
func (c *Cart) ContainsName(name string) bool {
	for _, p := range c.order {
		if p.name == name {
			return true
		}
	}
	return false
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, quantity := range c.items {
		count += quantity
	}
	return count
}

func (c *Cart) UniqueProductCount() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// ItemNames lists the name of every product in the order first added.
func (c *Cart) ItemNames() []string {
	names := make([]string, 0, len(c.order))
	for _, p := range c.order {
		names = append(names, p.name)
	}
	return names
}

// ProductsWithQuantities returns a copy of the items.
func (c *Cart) ProductsWithQuantities() map[Product]int {
	items := make(map[Product]int, len(c.items))
	for p, quantity := range c.items {
		items[p] = quantity
	}
	return items
}

// ActivePromotions returns a copy of the promotions keyed by product name.
func (c *Cart) ActivePromotions() map[string]float64 {
	promotions := make(map[string]float64, len(c.promotions))
	for name, amount := range c.promotions {
		promotions[name] = amount
	}
	return promotions
}

func (c *Cart) put(p Product, quantity int) {
	if _, ok := c.items[p]; !ok {
		c.order = append(c.order, p)
	}
	c.items[p] = quantity
	c.log.Debug("quantity set", zap.Stringer("product", p), zap.Int("quantity", quantity))
}

func (c *Cart) remove(p Product) {
	delete(c.items, p)
	for i, existing := range c.order {
		if existing == p {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.log.Debug("product removed", zap.Stringer("product", p))
}

func (c *Cart) rejected(op string, err error) error {
	c.log.Warn("cart operation rejected", zap.String("op", op), zap.Error(err))
	return err
}
