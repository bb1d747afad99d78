package utils

import "github.com/gin-gonic/gin"

// SuccessResponse is the uniform envelope for successful JSON responses.
func SuccessResponse(message string, data interface{}) gin.H {
	return gin.H{
		"success": true,
		"message": message,
		"data":    data,
	}
}

// ErrorResponse is the uniform envelope for failed JSON responses.
func ErrorResponse(message, detail string) gin.H {
	resp := gin.H{
		"success": false,
		"error":   message,
	}
	if detail != "" {
		resp["detail"] = detail
	}
	return resp
}
