package repository

import (
	"context"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ratingDoc es lo que guarda el scraper batch. user_rating en null marca
// una película loggeada como vista pero sin puntuar.
type ratingDoc struct {
	MovieID    int      `bson:"movie_id"`
	URL        string   `bson:"url"`
	UserRating *float64 `bson:"user_rating"`
	Liked      bool     `bson:"liked"`
	Username   string   `bson:"username"`
	ScrapedAt  int64    `bson:"scraped_at"`
}

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository(mdb *mongo.Database) *RatingRepository {
	return &RatingRepository{col: mdb.Collection("ratings")}
}

// GetUserRatings devuelve las filas puntuadas del usuario y los movie_ids
// vistos sin puntuar. Los dos sets se usan distinto: las filas entrenan el
// modelo, los unrated solo excluyen del pool de no vistas.
func (r *RatingRepository) GetUserRatings(ctx context.Context, username string) ([]models.UserRatingRecord, []int, error) {
	cur, err := r.col.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, nil, err
	}
	defer cur.Close(ctx)

	var rated []models.UserRatingRecord
	var unrated []int

	for cur.Next(ctx) {
		var doc ratingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, nil, err
		}

		if doc.UserRating == nil {
			unrated = append(unrated, doc.MovieID)
			continue
		}
		rated = append(rated, models.UserRatingRecord{
			MovieID:    doc.MovieID,
			URL:        doc.URL,
			UserRating: *doc.UserRating,
			Liked:      doc.Liked,
			Username:   doc.Username,
		})
	}
	return rated, unrated, cur.Err()
}

// GetAllRatings devuelve todas las filas puntuadas (entrenamiento del
// modelo general). maxRows <= 0 significa sin límite.
func (r *RatingRepository) GetAllRatings(ctx context.Context, maxRows int) ([]models.UserRatingRecord, error) {
	opts := options.Find()
	if maxRows > 0 {
		opts.SetLimit(int64(maxRows))
	}

	cur, err := r.col.Find(ctx, bson.M{"user_rating": bson.M{"$ne": nil}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.UserRatingRecord
	for cur.Next(ctx) {
		var doc ratingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		if doc.UserRating == nil {
			continue
		}
		out = append(out, models.UserRatingRecord{
			MovieID:    doc.MovieID,
			URL:        doc.URL,
			UserRating: *doc.UserRating,
			Liked:      doc.Liked,
			Username:   doc.Username,
		})
	}
	return out, cur.Err()
}

// UpsertRating lo usa el scraper batch al refrescar un perfil. rating nil
// marca la película como vista sin puntuar.
func (r *RatingRepository) UpsertRating(ctx context.Context, username string, movieID int, url string, rating *float64, liked bool) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"username": username, "movie_id": movieID},
		bson.M{"$set": bson.M{
			"url":         url,
			"user_rating": rating,
			"liked":       liked,
			"scraped_at":  time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}
