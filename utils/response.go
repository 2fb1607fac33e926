package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends the marketplace API's error envelope: a list of error
// objects plus the status text, the shape the real gateway rejects with.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"errors": []gin.H{{"message": message}},
		"status": status,
	})
}
