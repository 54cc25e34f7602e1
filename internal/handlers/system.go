package handlers

import (
	"net/http"

	"discuss/internal/docs"

	"github.com/gin-gonic/gin"
)

func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Docs serves the raw OpenAPI document. The browsable UI lives under /swagger.
func Docs(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", docs.JSON())
}
