package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SSm0k9y/coffee-break/internal/session"
)

func TestResolvePricesCart(t *testing.T) {
	db := newTestDB(t)
	a := seedProduct(t, db, "Americano", 50.0)
	b := seedProduct(t, db, "Cappuccino", 30.0)
	svc := NewCartService(db)

	cart := session.Cart{}
	cart.Add(a.ID)
	cart.Add(a.ID)
	cart.Add(b.ID)

	lines, total, err := svc.Resolve(cart)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 130.0, total)
	assert.Equal(t, "Americano", lines[0].Product.Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 100.0, lines[0].Subtotal)
	assert.Equal(t, 30.0, lines[1].Subtotal)
}

func TestResolveDropsDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	a := seedProduct(t, db, "Americano", 50.0)
	svc := NewCartService(db)

	cart := session.Cart{}
	cart.Add(a.ID)
	cart.Add(999) // never existed

	lines, total, err := svc.Resolve(cart)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 50.0, total)

	// entry vanishes entirely once the product is gone
	require.NoError(t, db.Delete(&a).Error)
	lines, total, err = svc.Resolve(cart)
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Zero(t, total)
}

func TestResolveEmptyCart(t *testing.T) {
	svc := NewCartService(newTestDB(t))

	lines, total, err := svc.Resolve(session.Cart{})
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Zero(t, total)
}
