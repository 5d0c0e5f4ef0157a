package router

import "github.com/gin-gonic/gin"

// Module registers a feature's routes on the /api group. Auth requirements are
// attached per route by the module itself.
type Module interface {
	Register(rg *gin.RouterGroup)
}
