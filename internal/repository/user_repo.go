package repository

import (
	"context"
	"sort"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository es el log de uso por username (cuántas veces y cuándo se
// pidió algo para cada perfil). No hay cuentas ni credenciales.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(mdb *mongo.Database) *UserRepository {
	return &UserRepository{col: mdb.Collection("users")}
}

// LogUsage incrementa el contador del usuario fijando first_used solo en el
// primer insert.
func (r *UserRepository) LogUsage(ctx context.Context, username string) error {
	now := time.Now().UTC()
	_, err := r.col.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{
			"$inc":         bson.M{"count": 1},
			"$set":         bson.M{"last_used": now},
			"$setOnInsert": bson.M{"first_used": now},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

// ListUsernames devuelve todos los usernames loggeados, ordenados.
func (r *UserRepository) ListUsernames(ctx context.Context) ([]string, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"username": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []string
	for cur.Next(ctx) {
		var doc models.UserLogDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.Username)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	sort.Strings(out)
	return out, nil
}

// UsageMetrics agrega el log completo: cantidad de usuarios distintos y la
// suma de todos sus contadores de uso.
func (r *UserRepository) UsageMetrics(ctx context.Context) (numUsers, totalUses int, err error) {
	cur, err := r.col.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":        nil,
			"num_users":  bson.M{"$sum": 1},
			"total_uses": bson.M{"$sum": "$count"},
		}}},
	})
	if err != nil {
		return 0, 0, err
	}
	defer cur.Close(ctx)

	var agg struct {
		NumUsers  int `bson:"num_users"`
		TotalUses int `bson:"total_uses"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&agg); err != nil {
			return 0, 0, err
		}
	}
	if err := cur.Err(); err != nil {
		return 0, 0, err
	}
	return agg.NumUsers, agg.TotalUses, nil
}
