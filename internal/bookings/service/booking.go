package service

import (
	"context"
	"errors"
	"time"

	bookingserrors "travelbook/internal/bookings/errors"
	"travelbook/internal/bookings/repository"
	"travelbook/internal/bookings/validator"
	"travelbook/pkg/config"
	"travelbook/pkg/dates"
	apperrors "travelbook/pkg/errors"
	"travelbook/pkg/events"
	"travelbook/pkg/model"
	"travelbook/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)
	GetActive(ctx context.Context) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
	Sweep(ctx context.Context) (int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	publisher *events.Publisher
	cfg       *config.Config
	loc       *time.Location
}

func NewBookingService(
	repo repository.BookingRepository,
	bookingValidator *validator.BookingValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: bookingValidator,
		publisher: publisher,
		cfg:       cfg,
		loc:       cfg.SweepLocation(),
	}
}

// Create is the intake path: normalize, validate, parse the travel date,
// reject past dates, persist. The one side effect is a single insert.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	s.normalize(req)

	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	travelDate, err := dates.Parse(req.Date)
	if err != nil {
		s.cfg.Log.Warn("Booking date rejected", "date", req.Date, "error", err)
		return nil, apperrors.Validation("Invalid date format. Please use YYYY-MM-DD format.", map[string]any{"date": req.Date})
	}

	today := dates.Today(s.loc)
	if travelDate.Before(today) {
		return nil, apperrors.Validation("Travel date cannot be in the past.", map[string]any{
			"date":  travelDate.String(),
			"today": today.String(),
		})
	}

	booking := &model.Booking{
		Name:        req.Name,
		Email:       req.Email,
		Destination: req.Destination,
		Date:        travelDate.Time(s.loc),
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.publisher.BookingCreated(ctx, booking)

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"destination", booking.Destination,
		"date", travelDate.String(),
	)
	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) GetActive(ctx context.Context) ([]*model.Booking, error) {
	today := dates.Today(s.loc).Time(s.loc)

	bookings, err := s.repo.FindActive(ctx, today)
	if err != nil {
		s.cfg.Log.Error("Failed to list active bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve active bookings", err)
	}
	return bookings, nil
}

// Delete reports malformed and unknown ids as structured results, never as
// errors. Only an unexpected store failure produces a non-nil error.
func (s *bookingService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return &model.DeleteResult{Success: false, Message: "Invalid booking ID format"}, nil
		}
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return &model.DeleteResult{Success: false, Message: "Booking not found"}, nil
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete booking", err)
	}

	s.publisher.BookingDeleted(ctx, id)

	s.cfg.Log.Info("Booking deleted", "id", id)
	return &model.DeleteResult{Success: true, Message: "Booking deleted successfully"}, nil
}

// Sweep removes bookings dated strictly before today at start-of-day.
// Same-day bookings are never touched, so re-running with an unchanged
// boundary deletes nothing further.
func (s *bookingService) Sweep(ctx context.Context) (int64, error) {
	today := dates.Today(s.loc).Time(s.loc)

	deleted, err := s.repo.DeleteExpired(ctx, today)
	if err != nil {
		return 0, apperrors.Internal("Failed to delete expired bookings", err)
	}

	if deleted > 0 {
		s.publisher.BookingsExpired(ctx, deleted)
	}

	s.cfg.Log.Info("Expired bookings removed", "deleted_count", deleted, "boundary", today)
	return deleted, nil
}

func (s *bookingService) normalize(req *model.BookingRequest) {
	req.Name = sanitizer.NormalizeName(req.Name)
	req.Email = sanitizer.NormalizeEmail(req.Email)
	req.Destination = sanitizer.NormalizeDestination(req.Destination)
	req.Date = sanitizer.TrimAndNormalize(req.Date)
}
