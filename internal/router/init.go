package router

import (
	"github.com/Naveenkumar-0814/PurityPropAI/internal/container"
	handlers "github.com/Naveenkumar-0814/PurityPropAI/internal/interface/http"
	"github.com/Naveenkumar-0814/PurityPropAI/internal/router/modules"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/knowledge"
	"github.com/Naveenkumar-0814/PurityPropAI/pkg/validation"
)

// InitModules builds every module from c and adds it to the registry, plus
// the root banner on the engine itself. Call once at startup, before
// RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	validation.Init()

	r.Engine.GET("/", handlers.Banner(c.Config.AppName, c.Config.AppVersion))

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(c.Auth, c.Logger), c.Identity))
	r.Add(modules.NewKnowledgeModule(handlers.NewKnowledgeHandler(knowledge.Default), c.Identity))
	r.Add(modules.NewSessionModule(handlers.NewSessionHandler(c.Chat, c.Logger), c.Identity))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
