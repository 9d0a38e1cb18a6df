package response

import "github.com/gin-gonic/gin"

// OK writes {"ok": true} merged with fields.
func OK(c *gin.Context, statusCode int, fields gin.H) {
	body := gin.H{"ok": true}
	for k, v := range fields {
		if k == "ok" {
			continue
		}
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Error writes {"ok": false, "error": message}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"ok":    false,
		"error": message,
	})
}

// AbortWithError is Error followed by aborting the handler chain.
func AbortWithError(c *gin.Context, statusCode int, message string) {
	Error(c, statusCode, message)
	c.Abort()
}
