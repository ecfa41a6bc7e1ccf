package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusSuccess is the status marker used by enveloped responses.
const StatusSuccess = "success"

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Success writes a 200 response wrapped as {"status":"success","data":...}.
func Success(c *gin.Context, data interface{}) {
	OK(c, gin.H{"status": StatusSuccess, "data": data})
}
