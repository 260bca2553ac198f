package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/config"
	"github.com/starwars-blog/catalogapi/database"
	"github.com/starwars-blog/catalogapi/repository"
)

// NewRouter wires every route to handlers sharing db. Background work started
// here (rate limiter cleanup) stops when ctx is cancelled.
func NewRouter(ctx context.Context, cfg config.Config, db *gorm.DB, log zerolog.Logger) http.Handler {
	users := repository.NewGormUserRepository(db)
	people := repository.NewPersonRepository(db)
	planets := repository.NewPlanetRepository(db)
	favourites := repository.NewFavouriteRepository(db)

	userHandler := &UserHandler{Users: users}
	personHandler := &PersonHandler{People: people}
	planetHandler := &PlanetHandler{Planets: planets}
	favouriteHandler := &FavouriteHandler{Favourites: favourites, Users: users, People: people, Planets: planets}
	healthHandler := &HealthHandler{Ping: func(ctx context.Context) error { return database.Ping(ctx, db) }}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	})

	r := chi.NewRouter()
	r.Use(RequestID)
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(Deadline(cfg.RequestTimeout))
	}
	r.Use(corsHandler.Handler)
	if cfg.RateLimitEnabled {
		limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.Cleanup(ctx, time.Minute)
		r.Use(limiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteAPIError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method "+r.Method+" not allowed", nil)
	})

	r.Get("/", Sitemap(r))
	r.Get("/healthz", healthHandler.Healthz)

	r.Get("/user", userHandler.ListUsers)

	r.Route("/peoples", func(r chi.Router) {
		r.Get("/", personHandler.ListPeople)
		r.Post("/", personHandler.CreatePerson)
		r.Get("/{people_id:[0-9]+}", personHandler.GetPerson)
	})

	r.Route("/planets", func(r chi.Router) {
		r.Get("/", planetHandler.ListPlanets)
		r.Post("/", planetHandler.CreatePlanet)
		r.Get("/{planet_id:[0-9]+}", planetHandler.GetPlanet)
	})

	r.Route("/favoritePlanet/{user_id:[0-9]+}", func(r chi.Router) {
		r.Get("/", favouriteHandler.ListFavouritePlanets)
		r.Post("/", favouriteHandler.AddFavouritePlanet)
	})

	r.Route("/favoritePeople/{user_id:[0-9]+}", func(r chi.Router) {
		r.Get("/", favouriteHandler.ListFavouritePeople)
		r.Post("/", favouriteHandler.AddFavouritePeople)
	})

	return r
}
