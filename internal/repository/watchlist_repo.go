package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// WatchlistRepository lee las watchlists que deja el scraper batch, una
// entrada por (username, url).
type WatchlistRepository struct {
	col *mongo.Collection
}

func NewWatchlistRepository(mdb *mongo.Database) *WatchlistRepository {
	return &WatchlistRepository{col: mdb.Collection("watchlists")}
}

// FetchWatchlist devuelve las urls de la watchlist de un usuario. Lista
// vacía si el scraper nunca lo vio.
func (r *WatchlistRepository) FetchWatchlist(ctx context.Context, username string) ([]string, error) {
	cur, err := r.col.Find(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var urls []string
	for cur.Next(ctx) {
		var doc struct {
			URL string `bson:"url"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		urls = append(urls, doc.URL)
	}
	return urls, cur.Err()
}
