package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusDuplicate = "duplicate"
)

// ValidBookingStatuses lists every accepted booking status.
var ValidBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusDuplicate,
}

// AddOn is an extra service attached to a booking.
type AddOn struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Booking represents a customer's request for a detailing service.
type Booking struct {
	ID              string     `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Phone           string     `bson:"phone" json:"phone"`
	Email           string     `bson:"email" json:"email"`
	Vehicle         string     `bson:"vehicle" json:"vehicle"`
	Package         string     `bson:"package" json:"package"`
	Address         string     `bson:"address" json:"address"`
	SpecialRequests string     `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
	Status          string     `bson:"status" json:"status"`
	AppointmentDate time.Time  `bson:"appointment_date" json:"appointmentDate"`
	CompletedDate   *time.Time `bson:"completed_date,omitempty" json:"completedDate,omitempty"`
	Price           float64    `bson:"price" json:"price"`
	AddOns          []AddOn    `bson:"add_ons,omitempty" json:"addOns,omitempty"`
	Notes           string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updated_at" json:"updatedAt"`
}

// BookingInput carries the fields a customer submits for a new booking.
type BookingInput struct {
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Vehicle         string    `json:"vehicle"`
	Package         string    `json:"package"`
	Address         string    `json:"address"`
	SpecialRequests string    `json:"specialRequests"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Price           float64   `json:"price"`
	AddOns          []AddOn   `json:"addOns"`
}

// BookingUpdate carries the allow-listed mutable fields of a booking.
// Nil pointers mean "leave unchanged".
type BookingUpdate struct {
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
	AppointmentDate *time.Time `json:"appointmentDate"`
	CompletedDate   *time.Time `json:"completedDate"`
}

// BookingStatusStat is an aggregate bucket of bookings sharing a status.
type BookingStatusStat struct {
	Status       string  `bson:"_id" json:"status"`
	Count        int     `bson:"count" json:"count"`
	TotalRevenue float64 `bson:"total_revenue" json:"totalRevenue"`
}

// BookingDayStat is a per-day aggregate bucket within the current month.
type BookingDayStat struct {
	Day     int     `bson:"_id" json:"day"`
	Count   int     `bson:"count" json:"count"`
	Revenue float64 `bson:"revenue" json:"revenue"`
}

// BookingStats is the full stats summary payload.
type BookingStats struct {
	ByStatus     []BookingStatusStat `json:"stats"`
	CurrentMonth []BookingDayStat    `json:"monthlyStats"`
}
