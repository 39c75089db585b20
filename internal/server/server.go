package server

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/AbdurRehman-eng/soulsync-sub001/internal/auth"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/database"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/feed"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/gamification"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/logging"
	"github.com/AbdurRehman-eng/soulsync-sub001/internal/mood"
	"github.com/AbdurRehman-eng/soulsync-sub001/pkg/config"
)

type Server struct {
	port    string
	db      database.Service
	handler http.Handler
	cfg     *config.Config

	feedService  feed.Service
	moodService  mood.Service
	gamification gamification.Service
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config) (*Server, error) {
	stats := db.Health()
	if stats["status"] != "up" {
		return nil, fmt.Errorf("database connection failed: %s", stats["error"])
	}
	logging.L().Info().Msg("database connection successful")

	profileRepo := auth.NewProfileRepository(db)
	gamificationRepo := gamification.NewRepository(db)
	gamificationService := gamification.NewService(gamificationRepo, profileRepo)

	moodRepo := mood.NewRepository(db)
	moodService := mood.NewService(moodRepo, profileRepo, &gamificationService)

	feedRepo := feed.NewRepository(db)
	feedService := feed.NewService(feedRepo, &moodService)

	s := &Server{
		port:         cfg.Port,
		db:           db,
		cfg:          cfg,
		feedService:  feedService,
		moodService:  moodService,
		gamification: gamificationService,
	}

	s.handler = s.RegisterRoutes()
	return s, nil
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
