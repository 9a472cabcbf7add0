package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"eventhub/internal/helpers"
	"eventhub/internal/models"

	"github.com/cloudinary/cloudinary-go/v2"
)

// DefaultSimilarLimit caps the similar-events recommendation when the caller
// does not ask for a specific size.
const DefaultSimilarLimit = 5

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type EventService struct {
	eventRepo models.EventRepo
	cld       *cloudinary.Cloudinary
	logger    *slog.Logger
}

func NewEventService(eventRepo models.EventRepo, cld *cloudinary.Cloudinary, logger *slog.Logger) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		cld:       cld,
		logger:    logger,
	}
}

// GetBySlug validates the slug shape before touching the store: a blank slug
// is a missing parameter, a malformed one never reaches the database.
func (es *EventService) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	slug = helpers.StringTrim(slug)
	if slug == "" {
		return nil, models.ErrMissingSlug
	}
	if !slugPattern.MatchString(slug) {
		return nil, models.ErrInvalidSlugFormat
	}

	return es.eventRepo.GetEventBySlug(ctx, slug)
}

// GetSimilar recommends events sharing at least one tag with the event at
// slug, newest first. It never fails its caller: unknown slug, empty source
// tags and store faults all come back as an empty slice. Suppressed store
// failures are logged so they stay observable.
func (es *EventService) GetSimilar(ctx context.Context, slug string, limit int64) []*models.Event {
	empty := []*models.Event{}

	if limit <= 0 {
		limit = DefaultSimilarLimit
	}

	slug = helpers.StringTrim(slug)
	if !slugPattern.MatchString(slug) {
		return empty
	}

	source, err := es.eventRepo.GetEventBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, models.ErrEventNotFound) {
			es.logger.Warn("similar events lookup suppressed a store failure",
				"slug", slug,
				"error", err,
			)
		}
		return empty
	}

	if len(source.Tags) == 0 {
		return empty
	}

	events, err := es.eventRepo.FindSimilarByTags(ctx, source.Slug, source.Tags, limit)
	if err != nil {
		es.logger.Warn("similar events query suppressed a store failure",
			"slug", slug,
			"error", err,
		)
		return empty
	}
	if events == nil {
		events = empty
	}

	return events
}

// CreateEvent normalizes and validates the payload, uploads a local cover
// image to Cloudinary when one is supplied, and inserts the event.
func (es *EventService) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if err := event.ValidateAndNormalize(); err != nil {
		return nil, err
	}

	if err := es.resolveImage(ctx, event); err != nil {
		return nil, err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	return es.eventRepo.CreateEvent(ctx, event)
}

// UpdateEvent applies a partial update to the event at slug. Supplied fields
// replace the stored ones, then the merged record goes through the same
// validate-and-normalize pass as a create, so a title change re-derives the
// slug and date/time changes are re-checked.
func (es *EventService) UpdateEvent(ctx context.Context, slug string, patch *models.Event) (*models.Event, error) {
	existing, err := es.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	mergeEventPatch(existing, patch)

	if err := existing.ValidateAndNormalize(); err != nil {
		return nil, err
	}

	if err := es.resolveImage(ctx, existing); err != nil {
		return nil, err
	}

	existing.UpdatedAt = time.Now()

	return es.eventRepo.UpdateEvent(ctx, existing)
}

func (es *EventService) resolveImage(ctx context.Context, event *models.Event) error {
	if event.Image == "" || strings.HasPrefix(event.Image, "http") {
		return nil
	}
	if es.cld == nil {
		return fmt.Errorf("image upload requested but cloudinary is not configured")
	}

	url, err := helpers.UploadImage(ctx, es.cld, event.Image, helpers.EventsFolder)
	if err != nil {
		return fmt.Errorf("failed to upload event image: %v", err)
	}
	event.Image = url
	return nil
}

func mergeEventPatch(dst, patch *models.Event) {
	if patch.Title != "" {
		dst.Title = patch.Title
	}
	if patch.Description != "" {
		dst.Description = patch.Description
	}
	if patch.Overview != "" {
		dst.Overview = patch.Overview
	}
	if patch.Image != "" {
		dst.Image = patch.Image
	}
	if patch.Venue != "" {
		dst.Venue = patch.Venue
	}
	if patch.Location != "" {
		dst.Location = patch.Location
	}
	if patch.Date != "" {
		dst.Date = patch.Date
	}
	if patch.Time != "" {
		dst.Time = patch.Time
	}
	if patch.Mode != "" {
		dst.Mode = patch.Mode
	}
	if patch.Audience != "" {
		dst.Audience = patch.Audience
	}
	if len(patch.Agenda) > 0 {
		dst.Agenda = patch.Agenda
	}
	if patch.Organizer != "" {
		dst.Organizer = patch.Organizer
	}
	if len(patch.Tags) > 0 {
		dst.Tags = patch.Tags
	}
}
