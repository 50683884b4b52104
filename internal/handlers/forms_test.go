package handlers

import (
	"reflect"
	"testing"

	"github.com/gracefellowship/admin-console/internal/models"
)

func TestTagsRoundTrip(t *testing.T) {
	t.Run("join then split reproduces the collection", func(t *testing.T) {
		original := []string{"faith", "prayer"}
		if got := splitTags(joinTags(original)); !reflect.DeepEqual(got, original) {
			t.Fatalf("round trip produced %v, want %v", got, original)
		}
	})

	t.Run("split trims and drops empties", func(t *testing.T) {
		got := splitTags(" faith ,, prayer,  ,healing")
		want := []string{"faith", "prayer", "healing"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("splitTags = %v, want %v", got, want)
		}
	})

	t.Run("blank string yields no tags", func(t *testing.T) {
		if got := splitTags("   "); len(got) != 0 {
			t.Fatalf("expected no tags, got %v", got)
		}
	})
}

func TestEventFormRecord(t *testing.T) {
	t.Run("checkbox value coerces to a strict boolean", func(t *testing.T) {
		form := eventForm{
			Title:       "Sunday Service",
			Description: "Weekly gathering",
			Date:        "2024-06-02",
			Time:        "10:00",
			Location:    "Main Hall",
			Category:    "service",
			IsActive:    "on",
		}
		record := form.record("")
		if record.IsActive != true {
			t.Fatalf("expected IsActive true, got %v", record.IsActive)
		}
		if record.Category != models.EventService {
			t.Fatalf("unexpected category %q", record.Category)
		}
	})

	t.Run("absent checkbox means inactive", func(t *testing.T) {
		if record := (eventForm{}).record(""); record.IsActive {
			t.Fatal("expected IsActive false for an unchecked box")
		}
	})

	t.Run("round trips through the form shape", func(t *testing.T) {
		event := models.Event{
			Title:       "Youth Conference",
			Description: "Three evenings",
			Date:        "2024-07-12",
			Time:        "18:30",
			Location:    "Annex",
			Category:    models.EventConference,
			IsActive:    true,
			ImageURL:    "https://cdn.example.com/youth.jpg",
		}
		got := eventFormFromRecord(event).record(event.ImageURL)
		if !reflect.DeepEqual(got, event) {
			t.Fatalf("round trip produced %+v, want %+v", got, event)
		}
	})
}

func TestTeachingFormFromRecord(t *testing.T) {
	teaching := models.Teaching{
		Title:        "Walking in Faith",
		Description:  "A study",
		Content:      "Full text",
		Speaker:      models.Speaker{Name: "Jane Doe"},
		Category:     models.TeachingSermon,
		Tags:         []string{"faith", "prayer"},
		ThumbnailURL: "https://cdn.example.com/thumb.jpg",
		YouTubeURL:   "https://youtu.be/dQw4w9WgXcQ",
		IsPublished:  true,
	}

	form := teachingFormFromRecord(teaching)

	if form.Author != "Jane Doe" {
		t.Fatalf("expected the nested speaker name to flatten into Author, got %q", form.Author)
	}
	if form.Tags != "faith, prayer" {
		t.Fatalf("expected comma-delimited tags, got %q", form.Tags)
	}
	if form.IsPublished != "on" {
		t.Fatalf("expected published checkbox on, got %q", form.IsPublished)
	}
	if form.ThumbnailURL != teaching.ThumbnailURL {
		t.Fatalf("expected thumbnail to carry over, got %q", form.ThumbnailURL)
	}
}

func TestTeachingFormRecord(t *testing.T) {
	form := teachingForm{
		Title:       "Walking in Faith",
		Description: "A study",
		Content:     "Full text",
		Author:      "Jane Doe",
		Category:    "sermon",
		Tags:        "faith, prayer",
		YouTubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	}

	t.Run("derives the video id and speaker record", func(t *testing.T) {
		record := form.record("thumb.jpg", "", "2024-06-02T10:00:00Z")
		if record.YouTubeVideoID != "dQw4w9WgXcQ" {
			t.Fatalf("unexpected video id %q", record.YouTubeVideoID)
		}
		if record.Speaker.Name != "Jane Doe" {
			t.Fatalf("unexpected speaker %+v", record.Speaker)
		}
		if !reflect.DeepEqual(record.Tags, []string{"faith", "prayer"}) {
			t.Fatalf("unexpected tags %v", record.Tags)
		}
		if record.PublishDate != "" {
			t.Fatalf("draft must not carry a publish timestamp, got %q", record.PublishDate)
		}
	})

	t.Run("publish timestamp set only when published at submission", func(t *testing.T) {
		published := form
		published.IsPublished = "on"
		record := published.record("", "", "2024-06-02T10:00:00Z")
		if !record.IsPublished {
			t.Fatal("expected IsPublished true")
		}
		if record.PublishDate != "2024-06-02T10:00:00Z" {
			t.Fatalf("unexpected publish date %q", record.PublishDate)
		}
	})

	t.Run("non-matching url clears the derived id", func(t *testing.T) {
		bad := form
		bad.YouTubeURL = "not a url"
		if record := bad.record("", "", ""); record.YouTubeVideoID != "" {
			t.Fatalf("expected empty video id, got %q", record.YouTubeVideoID)
		}
	})
}
