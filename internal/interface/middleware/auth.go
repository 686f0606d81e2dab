package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashisrivastavaa/Blog-App/pkg/helpers"
	"github.com/ashisrivastavaa/Blog-App/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// ErrNoToken means the client presented no session cookie at all, as
// opposed to presenting one that fails verification.
var ErrNoToken = errors.New("no token")

// Resolve extracts the session cookie and verifies it. It returns the
// claims or a typed rejection (ErrNoToken, helpers.ErrInvalidToken) and
// never touches store state; control flow stays with the caller.
func Resolve(c *gin.Context, session *helpers.SessionManager) (*helpers.SessionClaims, error) {
	token, err := c.Cookie(helpers.TokenCookie)
	if err != nil || token == "" {
		return nil, ErrNoToken
	}
	return session.Verify(token)
}

// RequireLogin gates protected routes. No cookie redirects to the login
// page; a bad token gets a visible 401 instead of a redirect so a broken
// cookie cannot loop the client through /login forever.
func RequireLogin(session *helpers.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Resolve(c, session)
		switch {
		case errors.Is(err, ErrNoToken):
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case err != nil:
			response.Fail(c, http.StatusUnauthorized, "Invalid token, please login again")
		default:
			c.Set(CtxUserIDKey, claims.UserID)
			c.Set(CtxUserEmailKey, claims.Email)
			c.Next()
		}
	}
}
