package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the cookie carrying the session bearer token.
const TokenCookie = "token"

type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

// SetToken stores the session token. exp is optional; the zero time means a
// session cookie with no explicit max-age, matching tokens without expiry.
func (m *CookieManager) SetToken(c *gin.Context, token string, exp time.Time) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := 0
	if !exp.IsZero() {
		maxAge = maxAgeFrom(exp)
	}
	c.SetCookie(TokenCookie, token, maxAge, "/", m.Domain, m.Secure, true)
}

// Clear empties the session cookie. The token itself stays valid until it
// expires or the signing secret rotates.
func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookie, "", -1, "/", m.Domain, m.Secure, true)
}

func maxAgeFrom(exp time.Time) int {
	sec := int(time.Until(exp).Seconds())
	if sec < 0 {
		return 0
	}
	return sec
}
