package reviewRepo

import (
	"time"

	"luxego/models"
)

// ReviewFilter narrows review listings. Public queries are implicitly
// restricted to approved reviews; Admin lifts that restriction.
type ReviewFilter struct {
	Rating   *float64
	Featured *bool
	SortBy   string // "recent" (default) or "rating"
	Limit    int
	Admin    bool
}

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id string) (*models.Review, error)
	Update(id string, fields map[string]interface{}) (*models.Review, error)

	List(filter ReviewFilter) ([]models.Review, error)

	// FindRecentByEmail returns a review for the email created at or after
	// since, or nil when none exists. Unapproved reviews count.
	FindRecentByEmail(email string, since time.Time) (*models.Review, error)

	// AverageRating aggregates over approved reviews only. Returns (0, 0)
	// when no approved review exists.
	AverageRating() (float64, int, error)

	// RatingDistribution buckets approved reviews by whole stars.
	RatingDistribution() (map[int]int, error)
}
