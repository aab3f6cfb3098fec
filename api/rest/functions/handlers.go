package functions

import (
	"net/http"

	"codeberg.org/flamesblue/server/internal/catalog"
	"github.com/gin-gonic/gin"
)

// returns the public list of available capabilities
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Functions: catalog.Capabilities()})
}
