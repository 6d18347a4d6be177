package logic

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to products constructed without a category.
const DefaultCategory = "General"

// Product identifies a purchasable item. It is an immutable, comparable value:
// two products with the same name, price and category are the same cart key
// no matter where they were constructed.
type Product struct {
	name     string
	price    float64
	category string
}

// NewProduct creates a product in the DefaultCategory.
func NewProduct(name string, price float64) (Product, error) {
	return NewCategorizedProduct(name, price, DefaultCategory)
}

// NewCategorizedProduct creates a product with an explicit category. The
// category is stored as given, including the empty string.
func NewCategorizedProduct(name string, price float64, category string) (Product, error) {
	if err := RequireNotEmptyString(name, ErrMsgProductNameRequired); err != nil {
		return Product{}, err
	}
	if err := RequireFinite(price, ErrMsgPriceNotFinite); err != nil {
		return Product{}, err
	}
	if err := RequireNonNegative(price, ErrMsgPriceNegative); err != nil {
		return Product{}, err
	}
	if price == 0 {
		// collapses -0 so both zeros hash to the same key
		price = 0
	}
	return Product{name: name, price: price, category: category}, nil
}

func (p Product) Name() string { return p.name }
func (p Product) Price() float64 { return p.price }
func (p Product) Category() string { return p.category }

// IsZero reports whether p is the zero Product, which stands for "no product".
func (p Product) IsZero() bool {
	return p == Product{}
}

func (p Product) Equal(other Product) bool {
	return p == other
}

func (p Product) String() string {
	return fmt.Sprintf("%s ($%s) [%s]", p.name, decimal.NewFromFloat(p.price).StringFixed(2), p.category)
}
