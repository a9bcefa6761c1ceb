// Package pricing recomputes order money amounts from authoritative
// catalogue prices. The server never trusts totals submitted by a client.
package pricing

import (
	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultTaxPercent is the storefront's flat tax rate.
const DefaultTaxPercent = 8.0

// Pricer resolves product prices. Satisfied by the catalogue store.
type Pricer interface {
	GetByID(id string) (model.Product, bool)
}

// Quote is a server-side recomputation of an order's money amounts.
type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Grand    decimal.Decimal
}

// Calculator computes order quotes at a fixed tax percentage.
type Calculator struct {
	taxPercent decimal.Decimal
}

// NewCalculator creates a calculator with the given tax percentage.
func NewCalculator(taxPercent float64) *Calculator {
	return &Calculator{taxPercent: decimal.NewFromFloat(taxPercent)}
}

// Quote prices the items against the catalogue. Items whose product no
// longer exists contribute zero. All amounts are rounded to two decimals.
func (c *Calculator) Quote(items []model.CartItem, pricer Pricer) Quote {
	subtotal := Subtotal(items, pricer)
	tax := CalculateTax(subtotal, c.taxPercent)
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Grand:    CalculateGrandTotal(subtotal, tax),
	}
}

// Subtotal sums price times quantity over the items, rounded to two
// decimals. Missing products contribute zero.
func Subtotal(items []model.CartItem, pricer Pricer) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		p, ok := pricer.GetByID(item.ProductID)
		if !ok {
			continue
		}
		price := decimal.NewFromFloat(p.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

// CalculateTax returns the tax amount on baseTotal at the given percentage,
// rounded to two decimals.
func CalculateTax(baseTotal, taxPercent decimal.Decimal) decimal.Decimal {
	return baseTotal.Mul(taxPercent).Div(decimal.NewFromInt(100)).Round(2)
}

// CalculateGrandTotal returns the total payable amount.
func CalculateGrandTotal(baseTotal, taxAmount decimal.Decimal) decimal.Decimal {
	return baseTotal.Add(taxAmount)
}
