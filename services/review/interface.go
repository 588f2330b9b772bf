package review

import (
	reviewRepo "luxego/database/repository/review"
	"luxego/models"
)

// ReviewService defines the interface for public review submission and
// administrative review management.
type ReviewService interface {
	SubmitReview(input models.ReviewInput) (*models.Review, error)
	ListReviews(filter reviewRepo.ReviewFilter) ([]models.Review, error)
	AverageRating() (float64, int, error)
	Approve(id string) (*models.Review, error)
	Feature(id string, featured bool) (*models.Review, error)
	Respond(id string, text string, respondedBy string) (*models.Review, error)
	Stats() (*models.ReviewStats, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo reviewRepo.ReviewRepository
}
