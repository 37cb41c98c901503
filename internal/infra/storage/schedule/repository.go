package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// CollectionName имя коллекции расписаний клиники
const CollectionName = "clinic_schedules"

// Repository репозиторий для работы с расписаниями в MongoDB
type Repository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db *mongo.Database, opTimeout time.Duration) *Repository {
	return &Repository{
		coll:    db.Collection(CollectionName),
		timeout: opTimeout,
	}
}

// ListByPriority возвращает все расписания, отсортированные по приоритету
// по убыванию (высокий приоритет перекрывает низкий)
func (r *Repository) ListByPriority(ctx context.Context) ([]*domain.ScheduleOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "priority", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: ListByPriority - find schedules: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []scheduleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: ListByPriority - decode documents: %v", ErrDecodeDocument, err)
	}

	schedules := make([]*domain.ScheduleOverride, 0, len(docs))
	for _, doc := range docs {
		s, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}

	return schedules, nil
}

// GetByName получает расписание по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.ScheduleOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc scheduleDocument
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - find schedule: %v", ErrExecQuery, err)
	}

	return doc.toDomain()
}

// Upsert создает расписание или заменяет существующее с тем же именем
func (r *Repository) Upsert(ctx context.Context, s *domain.ScheduleOverride) (*domain.ScheduleOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	s.UpdatedAt = now
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}

	doc, err := toDocument(s)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"priority":  doc.Priority,
			"startDate": doc.StartDate,
			"endDate":   doc.EndDate,
			"config":    doc.Config,
			"updatedAt": doc.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"id":        doc.ID,
			"name":      doc.Name,
			"createdAt": doc.CreatedAt,
		},
	}

	_, err = r.coll.UpdateOne(ctx, bson.M{"name": doc.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - upsert schedule: %v", ErrExecQuery, err)
	}

	return r.GetByName(ctx, s.Name)
}

// Delete удаляет расписание по имени
func (r *Repository) Delete(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete schedule: %v", ErrExecQuery, err)
	}
	if res.DeletedCount == 0 {
		return ErrScheduleNotFound
	}

	return nil
}
