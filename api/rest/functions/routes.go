package functions

import "github.com/gin-gonic/gin"

// registers capability listing routes
func RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/functions", Handler)
}
