// Package server exposes the generator over HTTP for the editor frontend.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New creates the HTTP server serving the generation API on addr.
func New(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Router builds the gin engine with all routes registered.
func Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/generate", handleGenerate)
	}
	return router
}
