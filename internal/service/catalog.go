package service

import (
	"gorm.io/gorm"

	"github.com/SSm0k9y/coffee-break/internal/model"
)

type CatalogService interface {
	List() ([]model.Product, error)
	Create(name string, price float64, image string) (model.Product, error)
	Delete(productID uint) error
}

type catalogService struct{ db *gorm.DB }

func NewCatalogService(db *gorm.DB) CatalogService { return &catalogService{db: db} }

func (s *catalogService) List() ([]model.Product, error) {
	var ps []model.Product
	return ps, s.db.Order("id asc").Find(&ps).Error
}

func (s *catalogService) Create(name string, price float64, image string) (model.Product, error) {
	p := model.Product{Name: name, Price: price, Image: image}
	return p, s.db.Create(&p).Error
}

// Delete removes the product row only. Order items keep their product id
// (dangling afterwards) and the uploaded image stays on disk.
func (s *catalogService) Delete(productID uint) error {
	return s.db.Delete(&model.Product{}, productID).Error
}
