package repository

import (
	"context"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(mdb *mongo.Database) *ReportRepository {
	return &ReportRepository{col: mdb.Collection("missing-movie-reports")}
}

func (r *ReportRepository) Insert(ctx context.Context, report *models.MissingMovieReport) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}
	report.UpdatedAt = report.CreatedAt
	_, err := r.col.InsertOne(ctx, report)
	return err
}

// FindByURL busca un reporte existente para no duplicar pendientes.
func (r *ReportRepository) FindByURL(ctx context.Context, url string) (*models.MissingMovieReport, error) {
	var report models.MissingMovieReport
	err := r.col.FindOne(ctx, bson.M{"url": url}).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List filtra por status ("" = todos), más nuevos primero.
func (r *ReportRepository) List(ctx context.Context, status string, limit int) ([]models.MissingMovieReport, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MissingMovieReport
	for cur.Next(ctx) {
		var report models.MissingMovieReport
		if err := cur.Decode(&report); err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, cur.Err()
}

// SetStatus marca un reporte como resuelto o rechazado.
func (r *ReportRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
