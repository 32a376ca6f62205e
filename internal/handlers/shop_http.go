package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SSm0k9y/coffee-break/internal/service"
	"github.com/SSm0k9y/coffee-break/internal/session"
)

// ShopHTTP serves the customer-facing pages: menu, cart and checkout.
type ShopHTTP struct {
	Catalog  service.CatalogService
	Cart     service.CartService
	Checkout service.CheckoutService
	Log      *zap.Logger
}

func NewShopHTTP(catalog service.CatalogService, cart service.CartService, checkout service.CheckoutService, log *zap.Logger) *ShopHTTP {
	return &ShopHTTP{Catalog: catalog, Cart: cart, Checkout: checkout, Log: log}
}

type checkoutForm struct {
	City        string `form:"city" binding:"required"`
	Street      string `form:"street" binding:"required"`
	HouseNumber string `form:"house_number" binding:"required"`
	Phone       string `form:"phone" binding:"required"`
}

func (h *ShopHTTP) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

func (h *ShopHTTP) Menu(c *gin.Context) {
	products, err := h.Catalog.List()
	if err != nil {
		h.fail(c, "list products", err)
		return
	}
	c.HTML(http.StatusOK, "menu.html", gin.H{
		"Products": products,
		"Flashes":  takeFlashes(c),
	})
}

func (h *ShopHTTP) AddToCart(c *gin.Context) {
	id, ok := paramID(c, "productId")
	if !ok {
		return
	}
	sess := sessions.Default(c)
	cart := session.Decode(sess.Get(session.Key))
	cart.Add(id)
	saveCart(c, sess, cart)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *ShopHTTP) ViewCart(c *gin.Context) {
	cart := session.Decode(sessions.Default(c).Get(session.Key))
	lines, total, err := h.Cart.Resolve(cart)
	if err != nil {
		h.fail(c, "resolve cart", err)
		return
	}
	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Items":   lines,
		"Total":   total,
		"Flashes": takeFlashes(c),
	})
}

func (h *ShopHTTP) UpdateCart(c *gin.Context) {
	id, ok := paramID(c, "productId")
	if !ok {
		return
	}
	sess := sessions.Default(c)
	cart := session.Decode(sess.Get(session.Key))
	cart.Update(id, c.Param("action"))
	saveCart(c, sess, cart)
	c.Redirect(http.StatusFound, "/cart")
}

func (h *ShopHTTP) RemoveFromCart(c *gin.Context) {
	id, ok := paramID(c, "productId")
	if !ok {
		return
	}
	sess := sessions.Default(c)
	cart := session.Decode(sess.Get(session.Key))
	cart.Remove(id)
	saveCart(c, sess, cart)
	c.Redirect(http.StatusFound, "/cart")
}

// CheckoutPage previews the order: same lines and total as the cart view,
// nothing mutated.
func (h *ShopHTTP) CheckoutPage(c *gin.Context) {
	sess := sessions.Default(c)
	cart := session.Decode(sess.Get(session.Key))
	if cart.IsEmpty() {
		flashAndRedirect(c, sess, "Your cart is empty!", http.StatusFound, "/menu")
		return
	}
	lines, total, err := h.Cart.Resolve(cart)
	if err != nil {
		h.fail(c, "resolve cart", err)
		return
	}
	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Items":   lines,
		"Total":   total,
		"Flashes": takeFlashes(c),
	})
}

func (h *ShopHTTP) PlaceOrder(c *gin.Context) {
	sess := sessions.Default(c)
	cart := session.Decode(sess.Get(session.Key))
	if cart.IsEmpty() {
		flashAndRedirect(c, sess, "Your cart is empty!", http.StatusSeeOther, "/menu")
		return
	}

	var form checkoutForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "missing required fields")
		return
	}

	order, err := h.Checkout.PlaceOrder(cart, service.Address{
		City:        form.City,
		Street:      form.Street,
		HouseNumber: form.HouseNumber,
		Phone:       form.Phone,
	})
	if errors.Is(err, service.ErrEmptyCart) {
		flashAndRedirect(c, sess, "Your cart is empty!", http.StatusSeeOther, "/menu")
		return
	}
	if err != nil {
		h.fail(c, "place order", err)
		return
	}

	h.Log.Info("order placed", zap.Uint("order_id", order.ID))
	sess.Set(session.Key, session.Cart{}.Map())
	flashAndRedirect(c, sess, "Your order has been placed!", http.StatusSeeOther, "/menu")
}

func (h *ShopHTTP) fail(c *gin.Context, msg string, err error) {
	h.Log.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.String(http.StatusInternalServerError, "server error")
}

// paramID parses a numeric path parameter; a non-numeric value is a 404,
// the same as an unroutable path.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "not found")
		return 0, false
	}
	return uint(id), true
}

func saveCart(c *gin.Context, sess sessions.Session, cart session.Cart) {
	sess.Set(session.Key, cart.Map())
	if err := sess.Save(); err != nil {
		_ = c.Error(err)
	}
}

func flashAndRedirect(c *gin.Context, sess sessions.Session, msg string, status int, location string) {
	sess.AddFlash(msg)
	if err := sess.Save(); err != nil {
		_ = c.Error(err)
	}
	c.Redirect(status, location)
}

// takeFlashes pops the pending one-shot notices; reading them clears
// them, so the session has to be saved again.
func takeFlashes(c *gin.Context) []string {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(); err != nil {
		_ = c.Error(err)
	}
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
