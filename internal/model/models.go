package model

import "time"

type Product struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"size:100;not null"`
	Price float64 `gorm:"not null"`
	Image string  `gorm:"size:200;not null"` // relative path under the static dir, e.g. "images/latte.png"
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
)

type Order struct {
	ID          uint   `gorm:"primaryKey"`
	City        string `gorm:"size:100;not null"`
	Street      string `gorm:"size:100;not null"`
	HouseNumber string `gorm:"size:20;not null"`
	Phone       string `gorm:"size:20;not null"`
	CreatedAt   time.Time
	Status      OrderStatus `gorm:"size:20;default:Pending"`
	// Items are deleted together with the order (association delete in
	// OrderService.Delete); schema-level FKs stay off so an item may
	// outlive its product.
	Items []OrderItem
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index;not null"`
	ProductID uint `gorm:"not null"`
	Quantity  int  `gorm:"not null"`
	// Product is nil when the referenced product has been deleted since
	// the order was placed; views drop such lines.
	Product *Product
}
