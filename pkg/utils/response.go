package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// AnalysisResponse sends a success response with the analysis envelope
// (message and processing time in seconds) used by the analysis endpoints
func AnalysisResponse(c *gin.Context, message string, data interface{}, processingSeconds float64) {
	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         message,
		"data":            data,
		"processing_time": processingSeconds,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
