package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gracefellowship/admin-console/internal/models"
)

type activityItem struct {
	Action string
	Item   string
	When   string

	at time.Time
}

func (h *Handler) Dashboard(c *gin.Context) {
	token := sessionToken(c)

	var alert string
	events, err := h.api.ListEvents(c.Request.Context(), token)
	if err != nil {
		alert = h.quietAPIError(c, err, "Failed to fetch events")
	}
	teachings, err := h.api.ListTeachings(c.Request.Context(), token)
	if err != nil {
		if msg := h.quietAPIError(c, err, "Failed to fetch teachings"); alert == "" {
			alert = msg
		}
	}

	activeEvents := 0
	for _, e := range events {
		if e.IsActive {
			activeEvents++
		}
	}
	publishedTeachings := 0
	for _, t := range teachings {
		if t.IsPublished {
			publishedTeachings++
		}
	}

	h.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title":              "Dashboard",
		"Alert":              alert,
		"TotalEvents":        len(events),
		"ActiveEvents":       activeEvents,
		"TotalTeachings":     len(teachings),
		"PublishedTeachings": publishedTeachings,
		"RecentActivity":     recentActivity(events, teachings, 5),
	})
}

// recentActivity merges the latest changes across both collections,
// newest first. Timestamp offsets vary with the backend, so ordering
// parses each RFC 3339 value instead of comparing strings; unparseable
// timestamps sink to the end.
func recentActivity(events []models.Event, teachings []models.Teaching, limit int) []activityItem {
	items := make([]activityItem, 0, len(events)+len(teachings))
	for _, e := range events {
		action := "Event updated"
		if e.CreatedAt == e.UpdatedAt {
			action = "Event created"
		}
		at, _ := time.Parse(time.RFC3339, e.UpdatedAt)
		items = append(items, activityItem{Action: action, Item: e.Title, When: e.UpdatedAt, at: at})
	}
	for _, t := range teachings {
		action := "Teaching updated"
		if t.IsPublished {
			action = "Teaching published"
		}
		at, _ := time.Parse(time.RFC3339, t.UpdatedAt)
		items = append(items, activityItem{Action: action, Item: t.Title, When: t.UpdatedAt, at: at})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].at.Equal(items[j].at) {
			return items[i].at.After(items[j].at)
		}
		return items[i].When > items[j].When
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
