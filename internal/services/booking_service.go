package services

import (
	"context"
	"strings"
	"time"

	"eventhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo models.BookingRepo
	eventRepo   models.EventRepo
}

func NewBookingService(bookingRepo models.BookingRepo, eventRepo models.EventRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
	}
}

// CreateBooking validates the request in order (first failure wins), rejects
// duplicates early, confirms the referenced event exists and inserts the
// booking. The duplicate pre-check is only an early exit: the compound
// unique index on (event_id, email) is the authoritative guard, and a
// duplicate key error from the insert itself — the losing side of a race —
// still comes back as ErrAlreadyBooked.
func (bs *BookingService) CreateBooking(ctx context.Context, eventID, email string) (*models.Booking, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, models.ErrMissingEventID
	}

	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, models.ErrMissingEmail
	}
	if !models.IsValidEmail(email) {
		return nil, models.ErrInvalidEmailFormat
	}

	oid, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, models.ErrInvalidEventIDFormat
	}

	existing, err := bs.bookingRepo.FindBookingByEventAndEmail(ctx, oid, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrAlreadyBooked
	}

	// Referential check: the booking must point at an event that exists at
	// creation time.
	if _, err := bs.eventRepo.GetEventByID(ctx, oid); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &models.Booking{
		EventID:   oid,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return bs.bookingRepo.CreateBooking(ctx, booking)
}
