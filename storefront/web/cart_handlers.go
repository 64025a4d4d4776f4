package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	projector "github.com/Ramakant55/Trendora-Boutique/projector-log-cart/logic"
)

type addItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// updateItemRequest accepts the quantity as a JSON string or number.
type updateItemRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

func (r updateItemRequest) raw() string {
	var s string
	if err := json.Unmarshal(r.Quantity, &s); err == nil {
		return s
	}
	return string(r.Quantity)
}

func (h *Handler) cartView(c *gin.Context) CartView {
	return newCartView(h.existingCart(c).Snapshot())
}

// existingCart returns the session's cart. Sessions without one get a
// detached empty cart that is never registered.
func (h *Handler) existingCart(c *gin.Context) *cart.Cart {
	id := sessionID(c)
	if sc, ok := h.sessions.Get(id); ok {
		return sc
	}
	return cart.NewCart(id)
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartView(c))
}

// History lists the cart's journal, one entry per recorded event.
func (h *Handler) History(c *gin.Context) {
	entries := projector.ProcessEventBook(h.existingCart(c).Events())
	if entries == nil {
		entries = []projector.LogResult{}
	}
	c.JSON(http.StatusOK, gin.H{"events": entries})
}

func (h *Handler) CartCount(c *gin.Context) {
	c.JSON(http.StatusOK, h.badge(c))
}

func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid input: "+err.Error())
		return
	}

	product, err := h.store.ProductByID(req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		writeError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	sc := h.sessions.Open(sessionID(c))
	if err := sc.AddToCart(product); err != nil {
		h.writeCommandError(c, err)
		return
	}
	h.logger.Info("added to cart",
		zap.String("session", sc.Session().String()),
		zap.Int("product_id", product.ID))
	c.JSON(http.StatusOK, newCartView(sc.Snapshot()))
}

func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_ARGUMENT", "product id must be an integer")
		return 0, false
	}
	return id, true
}

// UpdateItem sets a line's quantity. A quantity that is not a number leaves
// the cart unchanged and still answers 200 with the current cart.
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid input: "+err.Error())
		return
	}

	sc := h.existingCart(c)
	if err := sc.UpdateQuantityInput(id, req.raw()); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCartView(sc.Snapshot()))
}

func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}
	sc := h.existingCart(c)
	sc.RemoveFromCart(id)
	c.JSON(http.StatusOK, newCartView(sc.Snapshot()))
}

// EndSession destroys the cart and expires the session cookie.
func (h *Handler) EndSession(c *gin.Context) {
	ended := h.sessions.End(sessionID(c))
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"ended": ended})
}
