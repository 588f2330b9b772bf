// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"luxego/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultListLimit = 50

// List returns bookings matching the filter sorted by appointment date
// descending, plus the total match count.
func (r *MongoBookingRepo) List(filter BookingFilter) ([]models.Booking, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}
	dateRange := bson.M{}
	if !filter.StartDate.IsZero() {
		dateRange["$gte"] = filter.StartDate
	}
	if !filter.EndDate.IsZero() {
		dateRange["$lte"] = filter.EndDate
	}
	if len(dateRange) > 0 {
		query["appointment_date"] = dateRange
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "appointment_date", Value: -1}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, 0, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return bookings, total, nil
}

// FindRecentByEmail returns the most recent booking for the email created at
// or after since, or nil when none exists.
func (r *MongoBookingRepo) FindRecentByEmail(email string, since time.Time) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"email":      email,
		"created_at": bson.M{"$gte": since},
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var booking models.Booking
	if err := r.coll.FindOne(ctx, query, opts).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to probe recent bookings for %s: %w", email, err)
	}
	return &booking, nil
}

// StatsByStatus aggregates count and revenue per status.
func (r *MongoBookingRepo) StatsByStatus() ([]models.BookingStatusStat, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           "$status",
			"count":         bson.M{"$sum": 1},
			"total_revenue": bson.M{"$sum": "$price"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []models.BookingStatusStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode booking stats: %w", err)
	}
	return stats, nil
}

// StatsCurrentMonth aggregates count and revenue per day of the month
// containing now, bucketed by appointment date.
func (r *MongoBookingRepo) StatsCurrentMonth(now time.Time) ([]models.BookingDayStat, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"appointment_date": bson.M{"$gte": monthStart, "$lte": now},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":     bson.M{"$dayOfMonth": "$appointment_date"},
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$price"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []models.BookingDayStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode monthly booking stats: %w", err)
	}
	return stats, nil
}
