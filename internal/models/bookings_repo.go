package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	FindBookingByEventAndEmail(ctx context.Context, eventID primitive.ObjectID, email string) (*Booking, error)
	EnsureBookingIndexes(ctx context.Context) error
}

// EnsureBookingIndexes creates the compound unique index on
// (event_id, email) — the authoritative one-booking-per-email-per-event
// guard — and a non-unique index for per-event queries.
func (mdb *MongodbRepo) EnsureBookingIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "event_id", Value: 1},
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("event_email_unique"),
		},
		{
			Keys:    bson.D{{Key: "event_id", Value: 1}},
			Options: options.Index().SetName("event_id_idx"),
		},
	}

	if _, err := col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating booking indexes: %w", err)
	}

	return nil
}

// CreateBooking inserts a booking. A duplicate key error means another
// booking for the same (event_id, email) pair already landed — including the
// losing side of a race past the application-level pre-check — and is
// surfaced as ErrAlreadyBooked.
func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAlreadyBooked
		}
		return nil, fmt.Errorf("error inserting booking: %w", err)
	}

	return booking, nil
}

// FindBookingByEventAndEmail returns the booking for the pair, or nil when
// none exists.
func (mdb *MongodbRepo) FindBookingByEventAndEmail(ctx context.Context, eventID primitive.ObjectID, email string) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	var booking Booking
	err = col.FindOne(ctx, bson.M{"event_id": eventID, "email": email}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding booking: %w", err)
	}

	return &booking, nil
}
