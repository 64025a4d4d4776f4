package web

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) badge(c *gin.Context) BadgeView {
	if cart, ok := h.sessions.Get(sessionID(c)); ok {
		return newBadgeView(cart.Count())
	}
	return newBadgeView(0)
}

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":         h.opts.Name,
		"tagline":      h.opts.Site.Tagline,
		"collections":  h.store.ListCollections(),
		"new_arrivals": newProductViews(h.store.NewArrivals(h.opts.NewArrivals)),
		"testimonials": newTestimonialViews(h.store.ListTestimonials()),
		"cart":         h.badge(c),
	})
}

func (h *Handler) ListCollections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"collections": h.store.ListCollections(),
		"cart":        h.badge(c),
	})
}

func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"products": newProductViews(h.store.ListProducts()),
		"cart":     h.badge(c),
	})
}

// CollectionProducts decodes the :name segment itself, from the escaped
// path, so that names containing "%" or "/" survive intact.
func (h *Handler) CollectionProducts(c *gin.Context) {
	name, err := catalog.DecodeCollectionName(path.Base(c.Request.URL.EscapedPath()))
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	products := h.store.FilterByCollection(name)
	body := gin.H{
		"name":     name,
		"products": newProductViews(products),
		"empty":    len(products) == 0,
		"cart":     h.badge(c),
	}
	if collection, ok := h.store.CollectionByName(name); ok {
		body["collection"] = collection
	}
	if len(products) == 0 {
		body["message"] = MsgNoProducts
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.opts.Name,
		"tagline": h.opts.Site.Tagline,
		"about":   h.opts.Site.About,
		"cart":    h.badge(c),
	})
}

func (h *Handler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.opts.Name,
		"email":   h.opts.Site.Email,
		"phone":   h.opts.Site.Phone,
		"address": h.opts.Site.Address,
		"hours":   h.opts.Site.Hours,
		"cart":    h.badge(c),
	})
}
