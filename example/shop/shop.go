// Package shop is a small purchase-order model laid out the way schema
// compilers emit Go: exported structs, pointer-valued children and slices of
// pointers. Its fluent accessors live in shop_fluent_gen.go.
package shop

import "time"

//go:generate go run github.com/mlwelles/fluentGen

// Order is the document root.
type Order struct {
	ID       string
	ShipTo   *Address
	BillTo   *Address
	Item     []*Item
	Lines    Lines
	Archived ArchivedLines
	Notes    []string
	Payment  Payment
	Discount *Discount
	Created  *time.Time
	gift     *Wrapping
	coupons  []*Coupon
}

// Total returns the number of ordered units.
func (ord *Order) Total() int {
	n := 0
	for _, it := range ord.Item {
		if it != nil {
			n += it.Quantity
		}
	}
	return n
}

// Address is a postal address.
type Address struct {
	Street  string
	City    string
	Country *Country
}

// Country is identified by its ISO 3166 code.
type Country struct {
	Code string
}

// Item is an ordered product.
type Item struct {
	Sku      string
	Quantity int
}

// Line is a free-text order line.
type Line struct {
	Text string
	Unit string
}

// NewLine returns a Line counted in single units.
func NewLine() *Line {
	return &Line{Unit: "each"}
}

// Lines is a named sequence of lines.
type Lines []*Line

// ArchivedLines is declared on top of Lines, not directly on a slice.
type ArchivedLines Lines

// Payment is settled by one of several concrete methods.
type Payment interface {
	Amount() int
}

// Card pays by card.
type Card struct {
	Number string
	Cents  int
}

// Amount implements Payment.
func (c *Card) Amount() int { return c.Cents }

// Wrapping is optional gift packaging.
type Wrapping struct {
	Paper string
}

// Coupon is a redeemed promotion code.
type Coupon struct {
	Code string
}

// Coupons returns the codes redeemed on the order, skipping unset slots.
func (ord *Order) Coupons() []string {
	var codes []string
	for _, c := range ord.coupons {
		if c != nil {
			codes = append(codes, c.Code)
		}
	}
	return codes
}

// GiftPaper returns the wrapping paper, or "" when the order is not a gift.
func (ord *Order) GiftPaper() string {
	if ord.gift == nil {
		return ""
	}
	return ord.gift.Paper
}

// Discount needs a percentage to be meaningful.
type Discount struct {
	Percent int
}

// NewDiscount returns a discount of percent.
func NewDiscount(percent int) *Discount {
	return &Discount{Percent: percent}
}
