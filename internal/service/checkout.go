package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SSm0k9y/coffee-break/internal/model"
	"github.com/SSm0k9y/coffee-break/internal/session"
)

// Address is the delivery form submitted at checkout.
type Address struct {
	City        string
	Street      string
	HouseNumber string
	Phone       string
}

type CheckoutService interface {
	PlaceOrder(cart session.Cart, addr Address) (model.Order, error)
}

type checkoutService struct {
	db     *gorm.DB
	email  EmailService
	notify string
}

// NewCheckoutService builds the checkout flow. notify is the shop address
// mailed on every new order; empty disables notifications.
func NewCheckoutService(db *gorm.DB, email EmailService, notify string) CheckoutService {
	return &checkoutService{db: db, email: email, notify: notify}
}

func (s *checkoutService) PlaceOrder(cart session.Cart, addr Address) (model.Order, error) {
	if cart.IsEmpty() {
		return model.Order{}, ErrEmptyCart
	}

	order := model.Order{
		City:        addr.City,
		Street:      addr.Street,
		HouseNumber: addr.HouseNumber,
		Phone:       addr.Phone,
		Status:      model.OrderPending,
	}

	// Order and its items commit as one unit. Product ids from the cart
	// are written as-is; a stale id produces a dangling item.
	var total float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, e := range cart.Entries() {
			item := model.OrderItem{OrderID: order.ID, ProductID: e.ProductID, Quantity: e.Quantity}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			var p model.Product
			if err := tx.First(&p, e.ProductID).Error; err == nil {
				total += p.Price * float64(e.Quantity)
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	// best-effort
	if s.notify != "" {
		_ = s.email.Send(s.notify, "New order",
			fmt.Sprintf("Order #%d to %s, %s %s (phone %s), total %.2f.",
				order.ID, order.City, order.Street, order.HouseNumber, order.Phone, total))
	}

	return order, nil
}
