package main

import (
	"log"
	"net/http"

	_ "github.com/victorverma3/Letterboxd-Movie-Recommendations/docs" // swagger docs

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/cache"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/config"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/db"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/handler"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/repository"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Letterboxd Movie Recommendations API
// @version 1.0
// @description Recomendaciones de películas basadas en los ratings públicos de Letterboxd (random forest por usuario, Mongo, Redis)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo y Redis
	mdb := db.ConnectMongo(cfg)
	redis := cache.NewRedis(cfg)

	// repos
	movieRepo := repository.NewMovieRepository(mdb)
	ratingRepo := repository.NewRatingRepository(mdb)
	statsRepo := repository.NewStatsRepository(mdb)
	userRepo := repository.NewUserRepository(mdb)
	reportRepo := repository.NewReportRepository(mdb)
	watchlistRepo := repository.NewWatchlistRepository(mdb)

	if len(cfg.RecNodeAddrs) > 0 {
		log.Printf("[api] usando nodos de recomendación: %v", cfg.RecNodeAddrs)
	} else {
		log.Printf("[api] sin nodos configurados, los pipelines corren in-process")
	}

	general := recommender.NewGeneralModel(cfg.GeneralModelPath)

	// services
	profileSvc := service.NewProfileService(ratingRepo, movieRepo, redis)
	recommendSvc := service.NewRecommendService(profileSvc, movieRepo, general, cfg.RecNodeAddrs, cfg.SingleUserNoRewatch)
	statsSvc := service.NewStatsService(profileSvc, movieRepo, statsRepo)
	watchlistSvc := service.NewWatchlistService(watchlistRepo, movieRepo, recommendSvc)
	movieSvc := service.NewMovieService(movieRepo)
	userSvc := service.NewUserService(userRepo)
	reportSvc := service.NewReportService(reportRepo, movieRepo)
	adminSvc := service.NewAdminService(ratingRepo, movieRepo, movieRepo, general, recommendSvc, profileSvc)

	// handlers
	recommendH := handler.NewRecommendHandler(recommendSvc, userSvc)
	statsH := handler.NewStatsHandler(statsSvc, userSvc)
	watchlistH := handler.NewWatchlistHandler(watchlistSvc, userSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	userH := handler.NewUserHandler(userSvc)
	reportH := handler.NewReportHandler(reportSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/users", userH.ListUsers)
		r.Get("/get-application-metrics", userH.GetApplicationMetrics)

		r.Post("/get-recommendations", recommendH.GetRecommendations)
		r.Get("/ws/get-recommendations", recommendH.GetRecommendationsWS)
		r.Post("/get-predictions", recommendH.GetPredictions)

		r.Post("/get-statistics", statsH.GetStatistics)
		r.Post("/get-compatibility", statsH.GetCompatibility)

		r.Post("/get-watchlist-picks", watchlistH.GetWatchlistPicks)

		r.Get("/movies/search", movieH.Search)
		r.Get("/movies/top", movieH.Top)

		r.Post("/report-missing-movie", reportH.Report)
	})

	// mantenimiento (modelo general, caches, nodos, reportes)
	handler.MountAdminRoutes(r, adminH, reportH)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
