package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CatalogTTL es cuánto vive el snapshot del catálogo en memoria. El catálogo
// solo cambia cuando corre el scraper batch, así que un TTL corto alcanza.
const CatalogTTL = 15 * time.Minute

type MovieRepository struct {
	col *mongo.Collection

	// cache explícito del snapshot, con TTL e invalidación. Reemplaza al
	// clásico cache implícito por memoización que nadie puede vaciar.
	mu        sync.Mutex
	snapshot  []models.MovieRecord
	fetchedAt time.Time
}

func NewMovieRepository(mdb *mongo.Database) *MovieRepository {
	return &MovieRepository{col: mdb.Collection("movies")}
}

// GetCatalog devuelve el snapshot completo del catálogo. El slice devuelto
// se comparte entre requests y es de solo lectura; los pipelines copian
// antes de filtrar.
func (r *MovieRepository) GetCatalog(ctx context.Context) ([]models.MovieRecord, error) {
	r.mu.Lock()
	if r.snapshot != nil && time.Since(r.fetchedAt) < CatalogTTL {
		snap := r.snapshot
		r.mu.Unlock()
		return snap, nil
	}
	r.mu.Unlock()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieRecord
	for cur.Next(ctx) {
		var m models.MovieRecord
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.snapshot = out
	r.fetchedAt = time.Now()
	r.mu.Unlock()

	log.Printf("[movies] snapshot de catálogo refrescado: %d títulos", len(out))
	return out, nil
}

// InvalidateCatalog vacía el snapshot; el próximo GetCatalog relee Mongo.
func (r *MovieRepository) InvalidateCatalog() {
	r.mu.Lock()
	r.snapshot = nil
	r.mu.Unlock()
}

// FindByURL busca una película por url exacta.
func (r *MovieRepository) FindByURL(ctx context.Context, url string) (*models.MovieRecord, error) {
	var m models.MovieRecord
	err := r.col.FindOne(ctx, bson.M{"url": url}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Search busca por título (regex case-insensitive) con filtros opcionales.
func (r *MovieRepository) Search(
	ctx context.Context,
	q string,
	contentType string,
	yearFrom, yearTo int,
	limit, offset int,
) ([]models.MovieRecord, error) {

	filter := bson.M{}

	if q != "" {
		filter["title"] = bson.M{"$regex": q, "$options": "i"}
	}
	if contentType != "" {
		filter["content_type"] = contentType
	}
	if yearFrom > 0 || yearTo > 0 {
		yearCond := bson.M{}
		if yearFrom > 0 {
			yearCond["$gte"] = yearFrom
		}
		if yearTo > 0 {
			yearCond["$lte"] = yearTo
		}
		filter["release_year"] = yearCond
	}

	opts := options.Find().
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieRecord
	for cur.Next(ctx) {
		var m models.MovieRecord
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// Top por cantidad de ratings o por rating agregado.
func (r *MovieRepository) Top(ctx context.Context, metric string, limit int) ([]models.MovieRecord, error) {
	sortField := "letterboxd_rating_count" // popular
	if metric == "rating" {
		sortField = "letterboxd_rating"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieRecord
	for cur.Next(ctx) {
		var m models.MovieRecord
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}
