// Package web registers the user-facing surfaces: the portal page, its
// static assets and the swagger UI.
package web

import (
	"log"

	"github.com/gin-gonic/gin"
)

// PageServer handles serving the interactive portal page.
type PageServer struct {
	enabled bool
}

func NewPageServer(enabled bool) *PageServer {
	if enabled {
		log.Println("Portal page enabled")
	}
	return &PageServer{enabled: enabled}
}

// Enabled reports whether the page surface is active.
func (s *PageServer) Enabled() bool {
	return s.enabled
}

// RegisterRoutes wires the page handler and static assets into the router.
// The handler is supplied by the API layer, which owns the portal pipeline.
func (s *PageServer) RegisterRoutes(router *gin.Engine, page gin.HandlerFunc) {
	if !s.enabled {
		log.Println("Portal page is disabled")
		return
	}

	router.GET("/", page)
	router.Static("/static", "./internal/web/static")
}
