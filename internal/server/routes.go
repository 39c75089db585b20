package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/feed"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/gamification"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/mood"
	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Get home route
	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	r.Route("/soulsync/v1", func(r chi.Router) {
		s.loadFeedRoutes(r)
		s.loadMoodRoutes(r)
		s.loadGamificationRoutes(r)
	})
	r.Get("/soulsync/v1", s.ServerIsWorking)

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Soul Sync api"
	response.Success(w, resp, "Success")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.db.Health(), "Success")
}

func (s *Server) loadFeedRoutes(router chi.Router) {
	feedHandler := feed.NewHandler(s.feedService)

	router.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuthMiddleware)
		r.Get("/feed", feedHandler.GetFeedHandler)
	})
}

func (s *Server) loadMoodRoutes(router chi.Router) {
	moodHandler := mood.NewHandler(s.moodService)

	router.Get("/moods", moodHandler.ListMoodsHandler)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/moods/checkin", moodHandler.CheckInHandler)
		r.Get("/moods/history", moodHandler.GetHistoryHandler)
	})
}

func (s *Server) loadGamificationRoutes(router chi.Router) {
	gamificationHandler := gamification.NewHandler(s.gamification)

	router.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Post("/cards/{id}/complete", gamificationHandler.CompleteCardHandler)
		r.Get("/gamification/summary", gamificationHandler.GetSummaryHandler)
	})
}
