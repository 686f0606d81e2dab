// Package response holds the small set of reply helpers for a
// server-rendered surface: plain-text failures and redirects. Failures log
// the request id so a user report can be matched to the access log.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fail writes a plain-text failure and stops the handler chain. No internal
// detail reaches the client; message is the whole body.
func Fail(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.Header("X-Request-ID", c.GetString("request_id"))
	c.String(status, message)
	c.Abort()
}

// Redirect sends the client to location with 302 Found.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
