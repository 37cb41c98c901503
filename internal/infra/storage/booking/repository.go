package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/Clinic-BookingService/internal/domain"
)

// CollectionName имя коллекции бронирований
const CollectionName = "bookings"

// Repository репозиторий для работы с бронированиями в MongoDB
type Repository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db *mongo.Database, opTimeout time.Duration) *Repository {
	return &Repository{
		coll:    db.Collection(CollectionName),
		timeout: opTimeout,
	}
}

// Create создает новое бронирование
// ID генерируется на стороне сервиса (UUID), если не задан
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, toDocument(b)); err != nil {
		return nil, fmt.Errorf("%w: Create - insert booking: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc bookingDocument
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - find booking: %v", ErrExecQuery, err)
	}

	return doc.toDomain()
}

// GetTimesByDateKey возвращает метки времени всех неотмененных бронирований
// на указанную дату. Это множество занятых слотов для генератора.
func (r *Repository) GetTimesByDateKey(ctx context.Context, dateKey string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{
		"dateKey": dateKey,
		"status":  bson.M{"$ne": string(domain.StatusCancelled)},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetProjection(bson.M{"time": 1}))
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimesByDateKey - find bookings: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Time string `bson:"time"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: GetTimesByDateKey - decode documents: %v", ErrDecodeDocument, err)
	}

	times := make([]string, 0, len(docs))
	for _, d := range docs {
		times = append(times, d.Time)
	}
	return times, nil
}

// GetByDateKey получает бронирования на календарный день с фильтрацией
// Результат отсортирован хронологически по метке слота
func (r *Repository) GetByDateKey(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := bson.M{"dateKey": filter.DateKey}

	if filter.Status != nil {
		query["status"] = string(*filter.Status)
	} else if !filter.IncludeCancelled {
		query["status"] = bson.M{"$ne": string(domain.StatusCancelled)}
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateKey - find bookings: %v", ErrExecQuery, err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: GetByDateKey - decode documents: %v", ErrDecodeDocument, err)
	}

	bookings := make([]*domain.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	// 12-часовые метки ("09:30 AM") не сортируются лексикографически,
	// поэтому сортируем в памяти по минутам от полуночи
	sort.SliceStable(bookings, func(i, j int) bool {
		return labelMinutes(bookings[i].Time) < labelMinutes(bookings[j].Time)
	})

	return bookings, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"status":             string(domain.StatusCancelled),
			"cancellationReason": reason,
			"cancelledAt":        now,
			"updatedAt":          now,
		},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("%w: Cancel - update booking: %v", ErrExecQuery, err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":    string(status),
			"updatedAt": time.Now().UTC(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - update booking: %v", ErrExecQuery, err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// labelMinutes конвертирует метку слота в минуты от полуночи
// Некорректные метки уходят в конец списка
func labelMinutes(label string) int {
	t, err := time.Parse("03:04 PM", label)
	if err != nil {
		return 24 * 60
	}
	return t.Hour()*60 + t.Minute()
}
