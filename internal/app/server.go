package app

import (
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/SSm0k9y/coffee-break/internal/handlers"
	"github.com/SSm0k9y/coffee-break/internal/model"
	"github.com/SSm0k9y/coffee-break/internal/service"
)

// NewServer opens the database, migrates the schema and assembles the
// gin engine with all routes wired.
func NewServer(cfg Config, log *zap.Logger) (*gin.Engine, func(), error) {
	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	if err := db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return nil, nil, err
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, nil, err
	}

	r := NewRouter(db, cfg, log)

	cleanup := func() {
		if s, err := db.DB(); err == nil {
			_ = s.Close()
		}
	}
	return r, cleanup, nil
}

func openDB(cfg Config) (*gorm.DB, error) {
	// No schema-level foreign keys: order items must survive product
	// deletion, and order deletion cascades in OrderService.Delete.
	gcfg := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}
	if cfg.DBDSN != "" {
		return gorm.Open(postgres.Open(cfg.DBDSN), gcfg)
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
}

// NewRouter wires middleware, templates and routes onto a gin engine.
// Split from NewServer so tests can drive the full HTTP surface against
// their own database.
func NewRouter(db *gorm.DB, cfg Config, log *zap.Logger) *gin.Engine {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("coffee_session", store))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	catalog := service.NewCatalogService(db)
	cart := service.NewCartService(db)
	email := service.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	notify := cfg.NotifyEmail
	if cfg.SMTPHost == "" {
		notify = "" // notifications off without a relay
	}
	checkout := service.NewCheckoutService(db, email, notify)
	orders := service.NewOrderService(db)
	images := service.NewImageService(cfg.UploadDir)

	shop := handlers.NewShopHTTP(catalog, cart, checkout, log)
	admin := handlers.NewAdminHTTP(catalog, orders, images, log)

	r.GET("/", shop.Index)
	r.GET("/menu", shop.Menu)
	r.POST("/add_to_cart/:productId", shop.AddToCart)
	r.GET("/cart", shop.ViewCart)
	r.GET("/update_cart/:productId/:action", shop.UpdateCart)
	r.GET("/remove_from_cart/:productId", shop.RemoveFromCart)
	r.GET("/checkout", shop.CheckoutPage)
	r.POST("/checkout", shop.PlaceOrder)

	r.GET("/admin", admin.Products)
	r.POST("/admin", admin.CreateProduct)
	r.POST("/delete_product/:productId", admin.DeleteProduct)
	r.GET("/admin/orders", admin.ListOrders)
	r.POST("/confirm_order/:orderId", admin.ConfirmOrder)
	r.POST("/delete_order/:orderId", admin.DeleteOrder)

	return r
}
