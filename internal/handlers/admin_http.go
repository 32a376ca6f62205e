package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SSm0k9y/coffee-break/internal/service"
)

// AdminHTTP serves the catalog and order management pages. The routes
// carry no authentication, matching the system being ported; see
// DESIGN.md before changing that.
type AdminHTTP struct {
	Catalog service.CatalogService
	Orders  service.OrderService
	Images  service.ImageService
	Log     *zap.Logger
}

func NewAdminHTTP(catalog service.CatalogService, orders service.OrderService, images service.ImageService, log *zap.Logger) *AdminHTTP {
	return &AdminHTTP{Catalog: catalog, Orders: orders, Images: images, Log: log}
}

type productForm struct {
	Name  string `form:"name" binding:"required"`
	Price string `form:"price" binding:"required"`
}

func (h *AdminHTTP) Products(c *gin.Context) {
	h.renderProducts(c)
}

// CreateProduct adds a catalog entry from the admin form. A missing file
// or a disallowed extension skips creation and re-renders the product
// list with no error shown.
func (h *AdminHTTP) CreateProduct(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "missing required fields")
		return
	}
	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "price must be a number")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.renderProducts(c)
		return
	}
	image, err := h.Images.Save(file)
	if errors.Is(err, service.ErrUploadRejected) {
		h.renderProducts(c)
		return
	}
	if err != nil {
		h.fail(c, "save image", err)
		return
	}

	if _, err := h.Catalog.Create(form.Name, price, image); err != nil {
		h.fail(c, "create product", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHTTP) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "productId")
	if !ok {
		return
	}
	if err := h.Catalog.Delete(id); err != nil {
		h.fail(c, "delete product", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHTTP) ListOrders(c *gin.Context) {
	orders, err := h.Orders.List()
	if err != nil {
		h.fail(c, "list orders", err)
		return
	}
	c.HTML(http.StatusOK, "admin_orders.html", gin.H{"Orders": orders})
}

func (h *AdminHTTP) ConfirmOrder(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	if err := h.Orders.Confirm(id); err != nil {
		h.fail(c, "confirm order", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

func (h *AdminHTTP) DeleteOrder(c *gin.Context) {
	id, ok := paramID(c, "orderId")
	if !ok {
		return
	}
	if err := h.Orders.Delete(id); err != nil {
		h.fail(c, "delete order", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

func (h *AdminHTTP) renderProducts(c *gin.Context) {
	products, err := h.Catalog.List()
	if err != nil {
		h.fail(c, "list products", err)
		return
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{"Products": products})
}

func (h *AdminHTTP) fail(c *gin.Context, msg string, err error) {
	h.Log.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.String(http.StatusInternalServerError, "server error")
}
