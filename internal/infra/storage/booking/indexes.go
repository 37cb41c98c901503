package booking

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes создает индексы коллекции bookings
// Основной паттерн запросов - выборка по dateKey со статус-фильтром
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "dateKey", Value: 1}, {Key: "time", Value: 1}},
			Options: options.Index().SetName("date_key_time_idx"),
		},
		{
			Keys:    bson.D{{Key: "dateKey", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("date_key_status_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
