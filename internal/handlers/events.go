package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gracefellowship/admin-console/internal/flash"
)

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.api.ListEvents(c.Request.Context(), sessionToken(c))
	data := gin.H{
		"Title":  "Events",
		"Events": events,
	}
	if err != nil {
		// Inline, not flashed: this page is the one being rendered.
		data["Alert"] = h.quietAPIError(c, err, "Failed to fetch events")
	}
	h.render(c, http.StatusOK, "events.html", data)
}

func (h *Handler) NewEventForm(c *gin.Context) {
	h.render(c, http.StatusOK, "event_form.html", gin.H{
		"Title": "Create New Event",
		// New events default to visible.
		"Form": eventForm{IsActive: "on"},
	})
}

func (h *Handler) EditEventForm(c *gin.Context) {
	id := c.Param("id")
	event, err := h.api.GetEvent(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.normalizeAPIError(c, err, "Failed to fetch event")
		c.Redirect(http.StatusSeeOther, "/events")
		return
	}
	h.render(c, http.StatusOK, "event_form.html", gin.H{
		"Title":   "Edit Event",
		"Form":    eventFormFromRecord(event),
		"EventID": id,
	})
}

// SaveEvent handles both create (POST /events/new) and update
// (POST /events/edit/:id). A staged image uploads first; its failure
// aborts the submission so no record ever references a missing asset.
func (h *Handler) SaveEvent(c *gin.Context) {
	id := c.Param("id")
	isEdit := id != ""

	var form eventForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "event_form.html", gin.H{
			"Title":   h.eventFormTitle(isEdit),
			"Form":    form,
			"EventID": id,
			"Errors":  fieldErrors(err),
		})
		return
	}

	fallback := "Failed to create event"
	if isEdit {
		fallback = "Failed to update event"
	}

	imageURL := form.ImageURL
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil && fileHeader.Filename != "" {
		file, err := fileHeader.Open()
		if err != nil {
			h.renderEventError(c, form, id, "Failed to read the selected image")
			return
		}
		defer file.Close()

		url, err := h.api.UploadImage(c.Request.Context(), sessionToken(c), fileHeader.Filename, file)
		if err != nil {
			h.renderEventError(c, form, id, h.quietAPIError(c, err, fallback))
			return
		}
		imageURL = url
	}

	record := form.record(imageURL)

	var err error
	if isEdit {
		_, err = h.api.UpdateEvent(c.Request.Context(), sessionToken(c), id, record)
	} else {
		_, err = h.api.CreateEvent(c.Request.Context(), sessionToken(c), record)
	}
	if err != nil {
		h.renderEventError(c, form, id, h.quietAPIError(c, err, fallback))
		return
	}

	if isEdit {
		flash.Success(c, "Event updated successfully")
	} else {
		flash.Success(c, "Event created successfully")
	}
	c.Redirect(http.StatusSeeOther, "/events")
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")
	if err := h.api.DeleteEvent(c.Request.Context(), sessionToken(c), id); err != nil {
		h.normalizeAPIError(c, err, "Failed to delete event")
	} else {
		flash.Success(c, "Event deleted successfully")
	}
	c.Redirect(http.StatusSeeOther, "/events")
}

// renderEventError re-renders the form with the entered values intact so
// a failed submission loses nothing.
func (h *Handler) renderEventError(c *gin.Context, form eventForm, id, message string) {
	h.render(c, http.StatusOK, "event_form.html", gin.H{
		"Title":   h.eventFormTitle(id != ""),
		"Form":    form,
		"EventID": id,
		"Alert":   message,
	})
}

func (h *Handler) eventFormTitle(isEdit bool) string {
	if isEdit {
		return "Edit Event"
	}
	return "Create New Event"
}
