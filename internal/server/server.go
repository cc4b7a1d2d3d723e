// Package server exposes a brand sentiment source over HTTP.
package server

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/f3rmion/brandwatch/internal/source"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP routes backed by fetcher.
func NewRouter(fetcher source.Fetcher) *gin.Engine {
	r := gin.New()
	// Match on the escaped path so brand names containing "/" stay one segment.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/brands/:brand/sentiment", sentimentHandler(fetcher))
	}

	return r
}

func sentimentHandler(fetcher source.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.Param("brand"))
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "brand name is required"})
			return
		}

		result, err := fetcher.Fetch(c.Request.Context(), name)
		if errors.Is(err, source.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			log.Printf("fetching %q: %v", name, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "lookup failed"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
