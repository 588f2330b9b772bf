// File: services/review/service.go
package review

import (
	"errors"
	"fmt"
	"math"
	"time"

	reviewRepo "luxego/database/repository/review"
	"luxego/models"
	"luxego/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// cooldownWindow is the minimum gap between two reviews from the same email.
const cooldownWindow = 30 * 24 * time.Hour

// SubmitReview validates the input, enforces the per-email cooldown and
// persists the review unapproved.
func (svc *DefaultReviewService) SubmitReview(input models.ReviewInput) (*models.Review, error) {
	if err := validateReviewInput(&input); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(input.Email)
	if email != "" {
		prior, err := svc.Repo.FindRecentByEmail(email, time.Now().Add(-cooldownWindow))
		if err != nil {
			return nil, fmt.Errorf("cooldown check failed: %w", err)
		}
		if prior != nil {
			return nil, &RateLimitError{Email: email}
		}
	}

	rv := &models.Review{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Rating:    NormalizeRating(input.Rating),
		Text:      input.Text,
		Email:     email,
		BookingID: input.BookingID,
	}
	if err := svc.Repo.Create(rv); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("review submitted",
		zap.String("id", rv.ID),
		zap.Float64("rating", rv.Rating),
	)
	return rv, nil
}

// ListReviews returns reviews matching the filter. Public callers only ever
// see approved reviews.
func (svc *DefaultReviewService) ListReviews(filter reviewRepo.ReviewFilter) ([]models.Review, error) {
	return svc.Repo.List(filter)
}

// AverageRating aggregates over approved reviews only. With no approved
// reviews the average is 0, never NaN.
func (svc *DefaultReviewService) AverageRating() (float64, int, error) {
	return svc.Repo.AverageRating()
}

// Approve clears a review for public display.
func (svc *DefaultReviewService) Approve(id string) (*models.Review, error) {
	return svc.update(id, map[string]interface{}{"approved": true})
}

// Feature toggles the featured flag of a review.
func (svc *DefaultReviewService) Feature(id string, featured bool) (*models.Review, error) {
	return svc.update(id, map[string]interface{}{"featured": featured})
}

// Respond attaches an administrative reply to a review.
func (svc *DefaultReviewService) Respond(id string, text string, respondedBy string) (*models.Review, error) {
	if text == "" {
		return nil, &ValidationError{Fields: map[string]string{"response": "A response must have text"}}
	}
	if respondedBy == "" {
		respondedBy = "Luxego Team"
	}
	return svc.update(id, map[string]interface{}{
		"response": models.ReviewResponse{
			Text:        text,
			Date:        time.Now(),
			RespondedBy: respondedBy,
		},
	})
}

// Stats computes the average, total and 5-bucket distribution over approved
// reviews.
func (svc *DefaultReviewService) Stats() (*models.ReviewStats, error) {
	avg, total, err := svc.Repo.AverageRating()
	if err != nil {
		return nil, err
	}
	distribution, err := svc.Repo.RatingDistribution()
	if err != nil {
		return nil, err
	}
	return &models.ReviewStats{
		AverageRating: avg,
		TotalReviews:  total,
		Distribution:  distribution,
	}, nil
}

func (svc *DefaultReviewService) update(id string, fields map[string]interface{}) (*models.Review, error) {
	rv, err := svc.Repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	return rv, nil
}

// NormalizeRating rounds half away from zero at 0.1 granularity and clamps
// the result into [1.0, 5.0].
func NormalizeRating(rating float64) float64 {
	r := math.Round(rating*10) / 10
	if r < 1 {
		return 1
	}
	if r > 5 {
		return 5
	}
	return r
}

func validateReviewInput(input *models.ReviewInput) error {
	fields := map[string]string{}

	switch {
	case input.Name == "":
		fields["name"] = "A review must have a name"
	case len(input.Name) > 50:
		fields["name"] = "A name must have less or equal than 50 characters"
	}

	if input.Rating == 0 {
		fields["rating"] = "A review must have a rating"
	} else if input.Rating < 0.95 || input.Rating >= 5.5 {
		fields["rating"] = "Rating must be between 1.0 and 5.0"
	}

	switch {
	case input.Text == "":
		fields["text"] = "A review must have text"
	case len(input.Text) > 1000:
		fields["text"] = "Review text must have less or equal than 1000 characters"
	}

	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		fields["email"] = "Please provide a valid email"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
