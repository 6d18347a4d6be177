// Package main runs a demonstration cart session priced with the configured
// discount and promotions, then prints the cart summary.
package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cart/logic"
)

var logger *zap.Logger

type demoItem struct {
	name     string
	price    float64
	category string
	quantity int
}

var demoItems = []demoItem{
	{name: "Laptop", price: 999.99, category: "Electronics", quantity: 1},
	{name: "Mouse", price: 29.99, category: "Electronics", quantity: 2},
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// run fills a fresh cart with the demo items, applies cfg's pricing and
// writes the summary to out.
func run(cfg *Config, log *zap.Logger, out io.Writer) (*logic.Cart, error) {
	cart := logic.NewCart(logic.WithLogger(log))

	for _, item := range demoItems {
		p, err := logic.NewCategorizedProduct(item.name, item.price, item.category)
		if err != nil {
			return nil, errors.Wrapf(err, "create product %s", item.name)
		}
		if err := cart.AddProductQuantity(p, item.quantity); err != nil {
			return nil, errors.Wrapf(err, "add %s", item.name)
		}
	}

	if err := cart.ApplyDiscount(cfg.DiscountPercent); err != nil {
		return nil, errors.Wrap(err, "apply discount")
	}
	promoNames := make([]string, 0, len(cfg.Promotions))
	for name := range cfg.Promotions {
		promoNames = append(promoNames, name)
	}
	slices.Sort(promoNames)
	for _, name := range promoNames {
		if err := cart.AddPromotion(name, cfg.Promotions[name]); err != nil {
			return nil, errors.Wrapf(err, "add promotion for %s", name)
		}
	}

	if _, err := fmt.Fprintln(out, cart.Summary()); err != nil {
		return nil, errors.Wrap(err, "write summary")
	}

	log.Info("cart priced",
		zap.Stringer("cart_id", cart.ID()),
		zap.Int("items", cart.ItemCount()),
		zap.Float64("subtotal", cart.Subtotal()),
		zap.Float64("discount", cart.DiscountAmount()),
		zap.Float64("total", cart.Total()))

	return cart, nil
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err = newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if _, err := run(cfg, logger, os.Stdout); err != nil {
		logger.Fatal("cart session failed", zap.Error(err))
	}
}
