package utils

import "github.com/gin-gonic/gin"

// JSONError writes the error envelope the front end expects.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
