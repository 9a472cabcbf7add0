package models

import (
	"errors"
	"testing"
)

func validEvent() *Event {
	return &Event{
		Title:       "AI Infrastructure Summit",
		Description: "A deep dive into serving stacks",
		Overview:    "Talks and workshops on AI infrastructure",
		Venue:       "Convention Center Hall B",
		Location:    "Berlin",
		Date:        "2024-03-05T10:00:00Z",
		Time:        "18:30",
		Mode:        ModeOffline,
		Audience:    "Engineers",
		Agenda:      []string{"Keynote", "Panel"},
		Organizer:   "EventHub",
		Tags:        []string{"ai", "infra"},
	}
}

func TestValidateAndNormalize(t *testing.T) {
	e := validEvent()
	if err := e.ValidateAndNormalize(); err != nil {
		t.Fatalf("ValidateAndNormalize() failed for a valid event: %v", err)
	}
	if e.Slug != "ai-infrastructure-summit" {
		t.Errorf("slug = %q, want %q", e.Slug, "ai-infrastructure-summit")
	}
	if e.Date != "2024-03-05" {
		t.Errorf("date = %q, want %q", e.Date, "2024-03-05")
	}
}

func TestValidateAndNormalizeRederivesSlugFromTitle(t *testing.T) {
	e := validEvent()
	if err := e.ValidateAndNormalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	original := e.Slug

	e.Title = "AI Infrastructure Summit: Volume II"
	if err := e.ValidateAndNormalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Slug == original {
		t.Errorf("slug was not re-derived after title change: %q", e.Slug)
	}
	if e.Slug != "ai-infrastructure-summit-volume-ii" {
		t.Errorf("slug = %q, want %q", e.Slug, "ai-infrastructure-summit-volume-ii")
	}
}

func TestValidateAndNormalizeFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Event)
		wantErr error
	}{
		{
			name:    "unparseable date",
			mutate:  func(e *Event) { e.Date = "next tuesday" },
			wantErr: ErrInvalidDateFormat,
		},
		{
			name:    "out of range time",
			mutate:  func(e *Event) { e.Time = "24:00" },
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "single digit hour",
			mutate:  func(e *Event) { e.Time = "9:30" },
			wantErr: ErrInvalidTimeFormat,
		},
		{
			name:    "empty agenda",
			mutate:  func(e *Event) { e.Agenda = nil },
			wantErr: ErrEmptyAgenda,
		},
		{
			name:    "empty tags",
			mutate:  func(e *Event) { e.Tags = []string{} },
			wantErr: ErrEmptyTags,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := validEvent()
			tc.mutate(e)
			err := e.ValidateAndNormalize()
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("ValidateAndNormalize() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateAndNormalizeRequiredFields(t *testing.T) {
	e := validEvent()
	e.Title = ""
	if err := e.ValidateAndNormalize(); err == nil {
		t.Error("ValidateAndNormalize() accepted an event with no title")
	}

	e = validEvent()
	e.Mode = "in-person"
	if err := e.ValidateAndNormalize(); err == nil {
		t.Error("ValidateAndNormalize() accepted an unknown mode")
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-03-05T10:00:00Z", "2024-03-05", false},
		{"2024-03-05", "2024-03-05", false},
		{"2024-12-31T23:59:59", "2024-12-31", false},
		{"05/03/2024", "", true},
		{"not a date", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidDateFormat) {
				t.Errorf("NormalizeDate(%q) error = %v, want ErrInvalidDateFormat", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeDate(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
