package domain

import "github.com/shopspring/decimal"

// LineItem is one product entry in a cart. Name and price are copied
// from the catalog snapshot when the line is first created and are not
// refreshed on later merges.
type LineItem struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int64
}

// Cart holds a user's line items in the order they were first added.
// At most one line exists per product.
type Cart struct {
	UserID string
	Items  []LineItem
}

// Clone returns a copy whose item slice does not alias the receiver's.
func (c Cart) Clone() Cart {
	out := Cart{UserID: c.UserID}
	if len(c.Items) > 0 {
		out.Items = append([]LineItem(nil), c.Items...)
	}
	return out
}

// ProductSnapshot is the catalog's answer for a product at add time.
type ProductSnapshot struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
}

// CartView is the read projection of a cart, with the derived total.
type CartView struct {
	UserID string
	Items  []LineItem
	Total  decimal.Decimal
}
