package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/config"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/db"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/repository"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/service"
)

// Reentrena el modelo general desde consola. Es lo mismo que el endpoint
// /admin/general-model/retrain, pensado para el cron que corre después del
// scraper batch.
func main() {
	minRatings := flag.Int("min-ratings", service.DefaultMinRatingsPerUser, "mínimo de ratings por usuario para entrar al entrenamiento")
	maxRows := flag.Int("max-rows", service.DefaultMaxTrainingRows, "tope de filas de entrenamiento")
	flag.Parse()

	cfg := config.Load()
	mdb := db.ConnectMongo(cfg)

	movieRepo := repository.NewMovieRepository(mdb)
	ratingRepo := repository.NewRatingRepository(mdb)
	general := recommender.NewGeneralModel(cfg.GeneralModelPath)

	admin := service.NewAdminService(ratingRepo, movieRepo, movieRepo, general, nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	res, err := admin.RetrainGeneral(ctx, models.RetrainGeneralRequest{
		MinRatingsPerUser: *minRatings,
		MaxRows:           *maxRows,
	})
	if err != nil {
		log.Fatalf("[traingeneral] entrenamiento falló: %v", err)
	}

	log.Printf("[traingeneral] listo: %d filas, rmse=%.4f (redondeado %.4f), %.1fs, artefacto en %s",
		res.Rows, res.RMSETest, res.RoundedRMSETest, res.Seconds, res.Path)
}
