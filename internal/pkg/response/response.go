// Package response writes the API's JSON envelope. Every endpoint
// replies either {"success": true, "data": ...} or {"success": false,
// "error": {"code", "message"}} with an optional "details" object.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func errorBody(code, message string) gin.H {
	return gin.H{
		"code":    code,
		"message": message,
	}
}

// Error writes a failure envelope with a machine-readable code the
// clients can branch on.
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(code, message),
	})
}

// ErrorWithDetails attaches structured context to the error, such as
// the seat ids behind a booking conflict.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	body := errorBody(code, message)
	body["details"] = details
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   body,
	})
}
