package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// requestBaseURL returns the absolute prefix for asset URL rewriting:
// the configured override when set, otherwise the scheme and host of the
// incoming request.
func requestBaseURL(c *gin.Context, override string) string {
	if override != "" {
		return override
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is missing or malformed.
func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
