package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000", "https://*.run.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", a.handleHealth)

		api.Route("/soil", func(sr chi.Router) {
			sr.Get("/regions", a.handleListRegions)
			sr.Post("/resolve", a.handleResolveRegion)
		})

		api.Post("/recommend", a.handleRecommend)

		api.Route("/prices", func(pr chi.Router) {
			pr.Get("/options", a.handlePriceOptions)
			pr.Post("/forecast", a.handlePriceForecast)
		})

		api.Post("/yield", a.handleYield)
		api.Post("/schedule", a.handleSchedule)
		api.Post("/chat", a.handleChat)
		api.Post("/disease", a.handleDisease)

		api.Route("/prefs", func(fr chi.Router) {
			fr.Get("/language", a.handleGetLanguage)
			fr.Put("/language", a.handleSetLanguage)
		})
	})

	return r
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true, "chatMode": a.chatMode()})
}
