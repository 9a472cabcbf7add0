package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventhub/internal/helpers"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventsColName = "events"

type EventMode string

const (
	ModeOnline  EventMode = "online"
	ModeOffline EventMode = "offline"
	ModeHybrid  EventMode = "hybrid"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description" validate:"required"`
	Overview    string             `bson:"overview" json:"overview" validate:"required"`
	Image       string             `bson:"image" json:"image"`
	Venue       string             `bson:"venue" json:"venue" validate:"required"`
	Location    string             `bson:"location" json:"location" validate:"required"`
	Date        string             `bson:"date" json:"date" validate:"required"`       // YYYY-MM-DD
	Time        string             `bson:"time" json:"time" validate:"required"`       // HH:MM (24h)
	Mode        EventMode          `bson:"mode" json:"mode" validate:"required,oneof=online offline hybrid"`
	Audience    string             `bson:"audience" json:"audience" validate:"required"`
	Agenda      []string           `bson:"agenda" json:"agenda"`
	Organizer   string             `bson:"organizer" json:"organizer" validate:"required"`
	Tags        []string           `bson:"tags" json:"tags"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// dateLayouts are the input shapes accepted for the event date. Whatever the
// shape, the stored value is always date-only.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ValidateAndNormalize enforces the event shape before every insert or
// update: required fields, slug re-derived from the title, date collapsed to
// YYYY-MM-DD, time checked against 24-hour HH:MM, agenda and tags non-empty.
// It mutates the receiver in place and must run on the write path; nothing
// is normalized implicitly at save time.
func (e *Event) ValidateAndNormalize() error {
	if err := Validate.Struct(e); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	e.Slug = helpers.GenerateSlug(e.Title)
	if e.Slug == "" {
		return fmt.Errorf("title %q does not produce a usable slug: %w", e.Title, ErrInvalidSlugFormat)
	}

	date, err := NormalizeDate(e.Date)
	if err != nil {
		return err
	}
	e.Date = date

	if !timePattern.MatchString(strings.TrimSpace(e.Time)) {
		return ErrInvalidTimeFormat
	}
	e.Time = strings.TrimSpace(e.Time)

	if len(e.Agenda) == 0 {
		return ErrEmptyAgenda
	}
	if len(e.Tags) == 0 {
		return ErrEmptyTags
	}

	return nil
}

// NormalizeDate parses a date string through the accepted layouts and
// returns it as a date-only YYYY-MM-DD string.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", ErrInvalidDateFormat
}
