package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// returns the fixed root acknowledgement
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{
		Message: "FlamesBlue AI Builder Backend is running",
	})
}

// returns the fixed API greeting
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{
		Message: "Hello from the backend API!",
	})
}
