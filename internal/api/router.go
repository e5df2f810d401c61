package api

import (
	"net/http"

	"eld-trip-service/internal/api/handlers"
	"eld-trip-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters). lookup may be nil, in which case leg estimates
// use the great-circle heuristic.
func NewRouter(repo ports.TripRepository, lookup ports.RouteLookup) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Repo:   repo,
		Lookup: lookup,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips", tripHandler.Trips)
	mux.HandleFunc("/trips/", tripHandler.Get)

	return loggingMiddleware(mux)
}
