package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Ramakant55/Trendora-Boutique/common"
)

const sessionKey = "session_id"

// sessionCookie resolves the shopper's session from the cookie, minting a
// new id when the cookie is missing or malformed.
func (h *Handler) sessionCookie() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(h.opts.CookieName)
		id, perr := common.ParseSessionID(raw)
		if err != nil || perr != nil {
			id = common.NewSessionID()
			h.setSessionCookie(c, id.String(), 0)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opts.CookieName, value, maxAge, "/", "", h.opts.CookieSecure, true)
}

func sessionID(c *gin.Context) uuid.UUID {
	return c.MustGet(sessionKey).(uuid.UUID)
}
