package model

import (
	"time"
)

// Booking is a single travel reservation. Date carries the travel day as an
// instant at local midnight of that calendar day; it has no meaningful
// time-of-day. Records are never updated in place: they are created through
// intake and removed either by an explicit delete or by the expiry sweeper.
type Booking struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name        string    `json:"name" bson:"name" validate:"required,max=100"`
	Email       string    `json:"email" bson:"email" validate:"required,simple_email"`
	Destination string    `json:"destination" bson:"destination" validate:"required,max=100"`
	Date        time.Time `json:"date" bson:"date" validate:"required"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// BookingRequest is the raw intake payload. Date stays a string until the
// intake parser has decided which of the two parse variants applies.
type BookingRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,simple_email"`
	Destination string `json:"destination" validate:"required,max=100"`
	Date        string `json:"date" validate:"required"`
}

// DeleteResult is the structured outcome of a delete request. Malformed and
// unknown ids are reported here with Success=false, never as errors.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CleanupResult reports one sweep of expired bookings.
type CleanupResult struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deleted_count"`
	Error        string `json:"error,omitempty"`
}
