package repository

import (
	"context"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsRepository struct {
	col *mongo.Collection
}

func NewStatsRepository(mdb *mongo.Database) *StatsRepository {
	return &StatsRepository{col: mdb.Collection("user-statistics")}
}

// Upsert guarda las medias del usuario para los percentiles poblacionales.
func (r *StatsRepository) Upsert(ctx context.Context, doc *models.UserStatisticsDoc) error {
	doc.UpdatedAt = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"username": doc.Username},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetAll devuelve las estadísticas de toda la población loggeada.
func (r *StatsRepository) GetAll(ctx context.Context) ([]models.UserStatisticsDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.UserStatisticsDoc
	for cur.Next(ctx) {
		var doc models.UserStatisticsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}
