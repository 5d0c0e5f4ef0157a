package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Naveenkumar-0814/PurityPropAI/internal/container"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/interface/middleware"
)

// NewEngine builds the Gin engine with global middleware and all modules.
func NewEngine(c *container.Container) *gin.Engine {
	cfg := c.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP(cfg.TrustProxyHeaders))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	reg := NewRegistry(r)
	if cfg.HTTPLogEnabled {
		reg.Use(middleware.RequestLogger(c.Logger))
	}
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}
