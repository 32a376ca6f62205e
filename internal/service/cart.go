package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SSm0k9y/coffee-break/internal/model"
	"github.com/SSm0k9y/coffee-break/internal/session"
)

// Line is one priced cart row shown on the cart and checkout pages.
type Line struct {
	Product  model.Product
	Quantity int
	Subtotal float64
}

type CartService interface {
	// Resolve prices a session cart against the current catalog. Entries
	// whose product no longer exists are dropped without notice.
	Resolve(cart session.Cart) ([]Line, float64, error)
}

type cartService struct{ db *gorm.DB }

func NewCartService(db *gorm.DB) CartService { return &cartService{db: db} }

func (s *cartService) Resolve(cart session.Cart) ([]Line, float64, error) {
	var (
		lines []Line
		total float64
	)
	for _, e := range cart.Entries() {
		var p model.Product
		err := s.db.First(&p, e.ProductID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		} else if err != nil {
			return nil, 0, err
		}
		sub := p.Price * float64(e.Quantity)
		lines = append(lines, Line{Product: p, Quantity: e.Quantity, Subtotal: sub})
		total += sub
	}
	return lines, total, nil
}
