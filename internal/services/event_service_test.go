package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"eventhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeEventRepo is an in-memory stand-in for the Mongo-backed event repo.
type fakeEventRepo struct {
	events  []*models.Event
	failErr error // when set, every store operation fails with it
	lookups int
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, e := range f.events {
		if e.Slug == event.Slug {
			return nil, models.ErrDuplicateSlug
		}
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	for i, e := range f.events {
		if e.ID == event.ID {
			f.events[i] = event
			return event, nil
		}
	}
	return nil, models.ErrEventNotFound
}

func (f *fakeEventRepo) GetEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	f.lookups++
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, e := range f.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, models.ErrEventNotFound
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	f.lookups++
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, models.ErrEventNotFound
}

func (f *fakeEventRepo) FindSimilarByTags(ctx context.Context, slug string, tags []string, limit int64) ([]*models.Event, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	tagSet := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tagSet[tag] = true
	}

	var matches []*models.Event
	for _, e := range f.events {
		if e.Slug == slug {
			continue
		}
		for _, tag := range e.Tags {
			if tagSet[tag] {
				matches = append(matches, e)
				break
			}
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	if int64(len(matches)) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeEventRepo) EnsureEventIndexes(ctx context.Context) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededEvent(slug string, tags []string, createdAt time.Time) *models.Event {
	return &models.Event{
		ID:        primitive.NewObjectID(),
		Title:     slug,
		Slug:      slug,
		Tags:      tags,
		CreatedAt: createdAt,
	}
}

func TestGetBySlug(t *testing.T) {
	repo := &fakeEventRepo{
		events: []*models.Event{seededEvent("my-event", []string{"go"}, time.Now())},
	}
	es := NewEventService(repo, nil, testLogger())

	event, err := es.GetBySlug(context.Background(), "my-event")
	if err != nil {
		t.Fatalf("GetBySlug() unexpected error: %v", err)
	}
	if event.Slug != "my-event" {
		t.Errorf("GetBySlug() returned slug %q", event.Slug)
	}

	if _, err := es.GetBySlug(context.Background(), "unknown-event"); !errors.Is(err, models.ErrEventNotFound) {
		t.Errorf("GetBySlug(unknown) = %v, want ErrEventNotFound", err)
	}
}

func TestGetBySlugRejectsMalformedSlugBeforeStoreAccess(t *testing.T) {
	repo := &fakeEventRepo{}
	es := NewEventService(repo, nil, testLogger())

	for _, slug := range []string{"My_Event", "UPPER", "double--hyphen", "-leading", "trailing-"} {
		if _, err := es.GetBySlug(context.Background(), slug); !errors.Is(err, models.ErrInvalidSlugFormat) {
			t.Errorf("GetBySlug(%q) = %v, want ErrInvalidSlugFormat", slug, err)
		}
	}
	if _, err := es.GetBySlug(context.Background(), "   "); !errors.Is(err, models.ErrMissingSlug) {
		t.Errorf("GetBySlug(blank) want ErrMissingSlug")
	}

	if repo.lookups != 0 {
		t.Errorf("store was queried %d times for malformed slugs, want 0", repo.lookups)
	}
}

func TestGetSimilar(t *testing.T) {
	now := time.Now()
	source := seededEvent("ai-conf", []string{"ai", "infra"}, now.Add(-3*time.Hour))
	older := seededEvent("ml-meetup", []string{"ai"}, now.Add(-2*time.Hour))
	newer := seededEvent("llm-workshop", []string{"ai", "nlp"}, now.Add(-1*time.Hour))
	unrelated := seededEvent("pottery-class", []string{"crafts"}, now)

	repo := &fakeEventRepo{events: []*models.Event{source, older, newer, unrelated}}
	es := NewEventService(repo, nil, testLogger())

	got := es.GetSimilar(context.Background(), "ai-conf", 5)
	if len(got) != 2 {
		t.Fatalf("GetSimilar() returned %d events, want 2", len(got))
	}
	if got[0].Slug != "llm-workshop" || got[1].Slug != "ml-meetup" {
		t.Errorf("GetSimilar() order = [%s %s], want newest first", got[0].Slug, got[1].Slug)
	}

	if got := es.GetSimilar(context.Background(), "ai-conf", 1); len(got) != 1 || got[0].Slug != "llm-workshop" {
		t.Errorf("GetSimilar(limit=1) did not truncate to the newest match")
	}
}

func TestGetSimilarGracefulEmpty(t *testing.T) {
	now := time.Now()
	repo := &fakeEventRepo{events: []*models.Event{
		seededEvent("tagless", nil, now),
	}}
	es := NewEventService(repo, nil, testLogger())

	if got := es.GetSimilar(context.Background(), "tagless", 5); len(got) != 0 {
		t.Errorf("GetSimilar(empty tags) = %d events, want 0", len(got))
	}
	if got := es.GetSimilar(context.Background(), "no-such-event", 5); len(got) != 0 {
		t.Errorf("GetSimilar(unknown slug) = %d events, want 0", len(got))
	}
	if got := es.GetSimilar(context.Background(), "Bad_Slug", 5); len(got) != 0 {
		t.Errorf("GetSimilar(malformed slug) = %d events, want 0", len(got))
	}

	// Infrastructure failures are swallowed too, by design.
	repo.failErr = errors.New("connection reset")
	if got := es.GetSimilar(context.Background(), "tagless", 5); got == nil || len(got) != 0 {
		t.Errorf("GetSimilar(store failure) = %v, want empty slice", got)
	}
}

func TestCreateEventNormalizesBeforeInsert(t *testing.T) {
	repo := &fakeEventRepo{}
	es := NewEventService(repo, nil, testLogger())

	event := &models.Event{
		Title:       "Go Conference 2024!",
		Description: "d",
		Overview:    "o",
		Venue:       "v",
		Location:    "l",
		Date:        "2024-06-01T09:00:00Z",
		Time:        "09:00",
		Mode:        models.ModeHybrid,
		Audience:    "a",
		Agenda:      []string{"welcome"},
		Organizer:   "org",
		Tags:        []string{"go"},
	}

	created, err := es.CreateEvent(context.Background(), event)
	if err != nil {
		t.Fatalf("CreateEvent() unexpected error: %v", err)
	}
	if created.Slug != "go-conference-2024" {
		t.Errorf("slug = %q", created.Slug)
	}
	if created.Date != "2024-06-01" {
		t.Errorf("date = %q", created.Date)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps were not set")
	}

	// Same title again collides on the unique slug.
	dup := *event
	dup.ID = primitive.ObjectID{}
	if _, err := es.CreateEvent(context.Background(), &dup); !errors.Is(err, models.ErrDuplicateSlug) {
		t.Errorf("CreateEvent(duplicate title) = %v, want ErrDuplicateSlug", err)
	}
}

func TestUpdateEventRederivesSlug(t *testing.T) {
	repo := &fakeEventRepo{}
	es := NewEventService(repo, nil, testLogger())

	event := &models.Event{
		Title:       "Spring Festival",
		Description: "d",
		Overview:    "o",
		Venue:       "v",
		Location:    "l",
		Date:        "2024-04-01",
		Time:        "10:00",
		Mode:        models.ModeOffline,
		Audience:    "a",
		Agenda:      []string{"opening"},
		Organizer:   "org",
		Tags:        []string{"festival"},
	}
	if _, err := es.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	updated, err := es.UpdateEvent(context.Background(), "spring-festival", &models.Event{Title: "Summer Festival"})
	if err != nil {
		t.Fatalf("UpdateEvent() unexpected error: %v", err)
	}
	if updated.Slug != "summer-festival" {
		t.Errorf("slug after title change = %q, want %q", updated.Slug, "summer-festival")
	}
	if updated.Date != "2024-04-01" || updated.Time != "10:00" {
		t.Errorf("untouched fields changed: date=%q time=%q", updated.Date, updated.Time)
	}

	if _, err := es.UpdateEvent(context.Background(), "no-such-slug", &models.Event{Title: "X"}); !errors.Is(err, models.ErrEventNotFound) {
		t.Errorf("UpdateEvent(unknown slug) = %v, want ErrEventNotFound", err)
	}
}
