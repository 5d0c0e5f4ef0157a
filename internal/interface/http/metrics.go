package handlers

import "expvar"

// Outcome counters; served on /api/debug/vars under "auth" and "sessions".
var (
	authStats    = expvar.NewMap("auth")
	sessionStats = expvar.NewMap("sessions")
)

func count(key string) { authStats.Add(key, 1) }

func countSession(key string) { sessionStats.Add(key, 1) }
