package handler

import (
	"net/http"

	"mykonos/internal/registry"

	"github.com/gin-gonic/gin"
)

// Schema exposes the static table metadata for admin tooling.
func Schema() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tables": registry.Tables(),
			"names":  registry.Names(),
		})
	}
}
