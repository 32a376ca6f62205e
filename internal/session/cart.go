// Package session holds the per-visitor shopping cart that lives inside
// the cookie session. The cart is decoded into an explicit value at the
// start of a request, mutated, and written back; it is never persisted
// beyond the browser session.
package session

import (
	"encoding/gob"
	"sort"
	"strconv"
)

// Key is the session key the cart map is stored under.
const Key = "cart"

func init() {
	// The cookie store gob-encodes session values.
	gob.Register(map[string]int{})
}

// Cart maps product ids (as decimal strings) to quantities. Quantities
// are always positive; an entry is deleted instead of dropping to zero.
type Cart map[string]int

// Decode turns a raw session value into a Cart. Anything other than a
// well-formed map (including a missing value) yields a fresh empty cart.
func Decode(v any) Cart {
	if m, ok := v.(map[string]int); ok && m != nil {
		return Cart(m)
	}
	return Cart{}
}

// Map returns the cart in the shape stored in the session.
func (c Cart) Map() map[string]int { return map[string]int(c) }

func (c Cart) IsEmpty() bool { return len(c) == 0 }

// Add increments the quantity for a product by one, creating the entry
// at 1 if absent. The product is not checked against the catalog.
func (c Cart) Add(productID uint) {
	c[key(productID)]++
}

// Update applies "increase" or "decrease" to an existing entry. A
// decrease that reaches zero removes the entry. Products not in the
// cart and unknown actions are ignored.
func (c Cart) Update(productID uint, action string) {
	k := key(productID)
	qty, ok := c[k]
	if !ok {
		return
	}
	switch action {
	case "increase":
		c[k] = qty + 1
	case "decrease":
		if qty-1 <= 0 {
			delete(c, k)
		} else {
			c[k] = qty - 1
		}
	}
}

// Remove drops the entry for a product if present.
func (c Cart) Remove(productID uint) {
	delete(c, key(productID))
}

// Entry is one cart line in id order.
type Entry struct {
	ProductID uint
	Quantity  int
}

// Entries returns the cart contents sorted by product id, skipping any
// key that does not parse as an id.
func (c Cart) Entries() []Entry {
	out := make([]Entry, 0, len(c))
	for k, qty := range c {
		id, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, Entry{ProductID: uint(id), Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

func key(productID uint) string {
	return strconv.FormatUint(uint64(productID), 10)
}
