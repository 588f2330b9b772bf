// File: database/repository/review/reviewMongoQueries.go
package reviewRepo

import (
	"fmt"
	"math"
	"time"

	"luxego/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultReviewLimit = 10

// List returns reviews matching the filter. Public queries only ever see
// approved reviews; admin queries see everything.
func (r *MongoReviewRepo) List(filter ReviewFilter) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if !filter.Admin {
		query["approved"] = true
	}
	if filter.Rating != nil {
		query["rating"] = *filter.Rating
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	sort := bson.D{{Key: "created_at", Value: -1}}
	if filter.SortBy == "rating" {
		sort = bson.D{{Key: "rating", Value: -1}, {Key: "created_at", Value: 1}}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultReviewLimit
	}

	opts := options.Find().SetSort(sort).SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rv models.Review
		if err := cursor.Decode(&rv); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// FindRecentByEmail returns a review for the email created at or after since,
// or nil when none exists.
func (r *MongoReviewRepo) FindRecentByEmail(email string, since time.Time) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	query := bson.M{
		"email":      email,
		"created_at": bson.M{"$gte": since},
	}

	var review models.Review
	if err := r.coll.FindOne(ctx, query).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to probe recent reviews for %s: %w", email, err)
	}
	return &review, nil
}

// AverageRating aggregates over approved reviews only.
func (r *MongoReviewRepo) AverageRating() (float64, int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"approved": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"total": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate average rating: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Avg   float64 `bson:"avg"`
		Total int     `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, 0, fmt.Errorf("failed to decode average rating: %w", err)
	}
	if len(result) == 0 {
		return 0, 0, nil
	}
	return result[0].Avg, result[0].Total, nil
}

// RatingDistribution buckets approved reviews by whole stars.
func (r *MongoReviewRepo) RatingDistribution() (map[int]int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"approved": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$floor": "$rating"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating distribution: %w", err)
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Star  float64 `bson:"_id"`
		Count int     `bson:"count"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode rating distribution: %w", err)
	}

	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, b := range buckets {
		star := int(math.Floor(b.Star))
		if star >= 1 && star <= 5 {
			distribution[star] += b.Count
		}
	}
	return distribution, nil
}
