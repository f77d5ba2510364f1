package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with middleware and all routes registered.
// An empty allowedOrigins list leaves CORS handling off; "*" allows any origin.
func NewRouter(h *APIHandler, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if len(allowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(allowedOrigins)))
	}

	RegisterRoutes(router, h)
	return router
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	for _, origin := range allowedOrigins {
		if strings.TrimSpace(origin) == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	config.AllowOrigins = allowedOrigins
	return config
}

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	promptGroup := router.Group("/prompt")
	{
		promptGroup.POST("/generate", h.GeneratePrompt)
		promptGroup.GET("/options", h.GetOptions)
		if h.history != nil {
			promptGroup.GET("/history", h.ListHistory)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
