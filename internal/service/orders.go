package service

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SSm0k9y/coffee-break/internal/model"
)

// OrderSummary is one admin-view order with its surviving lines priced
// at the current catalog rates.
type OrderSummary struct {
	Order model.Order
	Lines []Line
	Total float64
}

type OrderService interface {
	List() ([]OrderSummary, error)
	Confirm(orderID uint) error
	Delete(orderID uint) error
}

type orderService struct{ db *gorm.DB }

func NewOrderService(db *gorm.DB) OrderService { return &orderService{db: db} }

// List returns all orders, newest first. Items whose product has been
// deleted are omitted from the lines and the total, same as the cart view.
func (s *orderService) List() ([]OrderSummary, error) {
	var orders []model.Order
	err := s.db.Preload("Items.Product").Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}

	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		sum := OrderSummary{Order: o}
		for _, it := range o.Items {
			if it.Product == nil {
				continue
			}
			sub := it.Product.Price * float64(it.Quantity)
			sum.Lines = append(sum.Lines, Line{Product: *it.Product, Quantity: it.Quantity, Subtotal: sub})
			sum.Total += sub
		}
		out = append(out, sum)
	}
	return out, nil
}

// Confirm flips the order to Confirmed. Missing ids and already-confirmed
// orders both fall through silently.
func (s *orderService) Confirm(orderID uint) error {
	return s.db.Model(&model.Order{}).Where("id = ?", orderID).
		Update("status", model.OrderConfirmed).Error
}

// Delete removes the order together with its items.
func (s *orderService) Delete(orderID uint) error {
	return s.db.Select(clause.Associations).Delete(&model.Order{ID: orderID}).Error
}
