package router

import "github.com/gin-gonic/gin"

// Registry mounts modules under /api. Middleware passed to Use wraps the API
// routes only; the root banner and unknown paths bypass it.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	apiMiddleware []gin.HandlerFunc
	modules       []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

// Use queues middleware for the API group. It takes effect in RegisterAll.
func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.apiMiddleware = append(r.apiMiddleware, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

// RegisterAll attaches the queued middleware before any module route, since
// gin only applies group middleware to routes added after it.
func (r *Registry) RegisterAll() {
	r.API.Use(r.apiMiddleware...)
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
