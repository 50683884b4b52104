package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gracefellowship/admin-console/internal/models"
)

// eventForm is the browser-facing shape of an event. ImageURL carries the
// current preview through a hidden field so an edit without a new file
// keeps the existing image.
type eventForm struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Date        string `form:"date" binding:"required"`
	Time        string `form:"time" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Category    string `form:"category" binding:"required,oneof=service fellowship conference outreach other"`
	IsActive    string `form:"isActive"`
	ImageURL    string `form:"imageUrl"`
}

func eventFormFromRecord(e models.Event) eventForm {
	f := eventForm{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    string(e.Category),
		ImageURL:    e.ImageURL,
	}
	if e.IsActive {
		f.IsActive = "on"
	}
	return f
}

// record assembles the persisted shape. The checkbox value ("on" or
// absent) is coerced to a strict boolean here.
func (f eventForm) record(imageURL string) models.Event {
	return models.Event{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Time:        f.Time,
		Location:    f.Location,
		Category:    models.EventCategory(f.Category),
		IsActive:    f.IsActive != "",
		ImageURL:    imageURL,
	}
}

// teachingForm flattens the nested speaker into Author and the tag list
// into a comma-delimited string, mirroring how the form displays them.
type teachingForm struct {
	Title        string `form:"title" binding:"required"`
	Description  string `form:"description" binding:"required"`
	Content      string `form:"content" binding:"required"`
	Author       string `form:"author" binding:"required"`
	Scripture    string `form:"scripture"`
	Category     string `form:"category" binding:"required,oneof=sermon devotional study testimony other"`
	Tags         string `form:"tags"`
	YouTubeURL   string `form:"youtubeUrl"`
	IsPublished  string `form:"isPublished"`
	ThumbnailURL string `form:"thumbnailUrl"`
}

func teachingFormFromRecord(t models.Teaching) teachingForm {
	f := teachingForm{
		Title:        t.Title,
		Description:  t.Description,
		Content:      t.Content,
		Author:       t.Speaker.Name,
		Scripture:    t.Scripture,
		Category:     string(t.Category),
		Tags:         joinTags(t.Tags),
		YouTubeURL:   t.YouTubeURL,
		ThumbnailURL: t.ThumbnailURL,
	}
	if t.IsPublished {
		f.IsPublished = "on"
	}
	return f
}

// record assembles the persisted shape after uploads have resolved.
// thumbnailURL and videoURL are the post-upload references; now is the
// publish timestamp applied only when the published flag is set at
// submission.
func (f teachingForm) record(thumbnailURL, videoURL, now string) models.Teaching {
	t := models.Teaching{
		Title:          f.Title,
		Description:    f.Description,
		Content:        f.Content,
		Speaker:        models.Speaker{Name: f.Author},
		Scripture:      f.Scripture,
		Category:       models.TeachingCategory(f.Category),
		Tags:           splitTags(f.Tags),
		ThumbnailURL:   thumbnailURL,
		VideoURL:       videoURL,
		YouTubeURL:     f.YouTubeURL,
		YouTubeVideoID: extractYouTubeID(f.YouTubeURL),
		IsPublished:    f.IsPublished != "",
	}
	if t.IsPublished {
		t.PublishDate = now
	}
	return t
}

// splitTags turns a comma-delimited display string back into the tag
// collection, trimming whitespace and dropping empty entries.
func splitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// fieldErrors translates binding failures into per-field inline messages.
func fieldErrors(err error) map[string]string {
	msgs := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["Form"] = "Invalid form submission"
		return msgs
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs[fe.Field()] = fe.Field() + " is required"
		case "oneof":
			msgs[fe.Field()] = fe.Field() + " must be one of: " + fe.Param()
		default:
			msgs[fe.Field()] = fe.Field() + " is invalid"
		}
	}
	return msgs
}
