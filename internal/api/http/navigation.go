package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prompt-pronto/prompt-pronto-backend/internal/navigation"
)

// RegisterNavigation exposes the shell's route table.
func RegisterNavigation(r gin.IRouter) {
	r.GET("/navigation", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"routes":  navigation.Routes(),
			"sidebar": navigation.Sidebar(),
		})
	})
	r.GET("/navigation/resolve", func(c *gin.Context) {
		path := c.Query("path")
		route := navigation.Resolve(path)
		c.JSON(http.StatusOK, gin.H{
			"ok":         true,
			"route":      route,
			"redirected": route.Path != path,
		})
	})
}
