package models

import "time"

// ReviewResponse is an administrative reply attached to a review.
type ReviewResponse struct {
	Text        string    `bson:"text" json:"text"`
	Date        time.Time `bson:"date" json:"date"`
	RespondedBy string    `bson:"responded_by" json:"respondedBy"`
}

// Review represents a customer review. Unapproved reviews are only visible
// through admin queries.
type Review struct {
	ID        string          `bson:"id" json:"id"`
	Name      string          `bson:"name" json:"name"`
	Rating    float64         `bson:"rating" json:"rating"`
	Text      string          `bson:"text" json:"text"`
	Email     string          `bson:"email,omitempty" json:"email,omitempty"`
	Approved  bool            `bson:"approved" json:"approved"`
	Featured  bool            `bson:"featured" json:"featured"`
	BookingID string          `bson:"booking_id,omitempty" json:"bookingId,omitempty"`
	Response  *ReviewResponse `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `bson:"updated_at" json:"updatedAt"`
}

// ReviewInput carries the fields a customer submits for a new review.
type ReviewInput struct {
	Name      string  `json:"name"`
	Rating    float64 `json:"rating"`
	Text      string  `json:"text"`
	Email     string  `json:"email"`
	BookingID string  `json:"bookingId"`
}

// ReviewStats is the review stats summary payload. Distribution buckets are
// keyed by whole stars (floor of the stored rating).
type ReviewStats struct {
	AverageRating float64     `json:"averageRating"`
	TotalReviews  int         `json:"totalReviews"`
	Distribution  map[int]int `json:"distribution"`
}
