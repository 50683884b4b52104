package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gracefellowship/admin-console/internal/flash"
)

func (h *Handler) ListTeachings(c *gin.Context) {
	teachings, err := h.api.ListTeachings(c.Request.Context(), sessionToken(c))
	data := gin.H{
		"Title":     "Teachings",
		"Teachings": teachings,
	}
	if err != nil {
		data["Alert"] = h.quietAPIError(c, err, "Failed to fetch teachings")
	}
	h.render(c, http.StatusOK, "teachings.html", data)
}

func (h *Handler) NewTeachingForm(c *gin.Context) {
	h.render(c, http.StatusOK, "teaching_form.html", gin.H{
		"Title": "Create New Teaching",
		"Form":  teachingForm{},
	})
}

func (h *Handler) EditTeachingForm(c *gin.Context) {
	id := c.Param("id")
	teaching, err := h.api.GetTeaching(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.normalizeAPIError(c, err, "Failed to fetch teaching")
		c.Redirect(http.StatusSeeOther, "/teachings")
		return
	}
	h.render(c, http.StatusOK, "teaching_form.html", gin.H{
		"Title":      "Edit Teaching",
		"Form":       teachingFormFromRecord(teaching),
		"TeachingID": id,
	})
}

// SaveTeaching handles both create and update. The submission is a short
// pipeline of fallible steps: upload the staged image, upload the staged
// video, then write the record. Any step's failure short-circuits the
// rest, so a record never references media that failed to upload.
func (h *Handler) SaveTeaching(c *gin.Context) {
	id := c.Param("id")
	isEdit := id != ""

	var form teachingForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "teaching_form.html", gin.H{
			"Title":      h.teachingFormTitle(isEdit),
			"Form":       form,
			"TeachingID": id,
			"Errors":     fieldErrors(err),
		})
		return
	}

	fallback := "Failed to create teaching"
	if isEdit {
		fallback = "Failed to update teaching"
	}

	thumbnailURL := form.ThumbnailURL
	if fileHeader, err := c.FormFile("image"); err == nil && fileHeader != nil && fileHeader.Filename != "" {
		file, err := fileHeader.Open()
		if err != nil {
			h.renderTeachingError(c, form, id, "Failed to read the selected image")
			return
		}
		defer file.Close()

		url, err := h.api.UploadImage(c.Request.Context(), sessionToken(c), fileHeader.Filename, file)
		if err != nil {
			h.renderTeachingError(c, form, id, h.quietAPIError(c, err, fallback))
			return
		}
		thumbnailURL = url
	}

	videoURL := ""
	if fileHeader, err := c.FormFile("video"); err == nil && fileHeader != nil && fileHeader.Filename != "" {
		file, err := fileHeader.Open()
		if err != nil {
			h.renderTeachingError(c, form, id, "Failed to read the selected video")
			return
		}
		defer file.Close()

		url, err := h.api.UploadVideo(c.Request.Context(), sessionToken(c), fileHeader.Filename, file)
		if err != nil {
			h.renderTeachingError(c, form, id, h.quietAPIError(c, err, fallback))
			return
		}
		videoURL = url
	}

	// With no staged image and no existing thumbnail, fall back to the
	// externally hosted thumbnail for the derived video id.
	if thumbnailURL == "" {
		if videoID := extractYouTubeID(form.YouTubeURL); videoID != "" {
			thumbnailURL = youTubeThumbnailURL(videoID)
		}
	}

	record := form.record(thumbnailURL, videoURL, time.Now().UTC().Format(time.RFC3339))

	var err error
	if isEdit {
		_, err = h.api.UpdateTeaching(c.Request.Context(), sessionToken(c), id, record)
	} else {
		_, err = h.api.CreateTeaching(c.Request.Context(), sessionToken(c), record)
	}
	if err != nil {
		h.renderTeachingError(c, form, id, h.quietAPIError(c, err, fallback))
		return
	}

	if isEdit {
		flash.Success(c, "Teaching updated successfully")
	} else {
		flash.Success(c, "Teaching created successfully")
	}
	c.Redirect(http.StatusSeeOther, "/teachings")
}

// TogglePublishTeaching flips a teaching's publish state from the list
// view. The current state is fetched fresh before choosing a transition,
// so a stale list page cannot invert it.
func (h *Handler) TogglePublishTeaching(c *gin.Context) {
	id := c.Param("id")

	teaching, err := h.api.GetTeaching(c.Request.Context(), sessionToken(c), id)
	if err != nil {
		h.normalizeAPIError(c, err, "Failed to update teaching status")
		c.Redirect(http.StatusSeeOther, "/teachings")
		return
	}
	currentlyPublished := teaching.IsPublished

	if currentlyPublished {
		err = h.api.UnpublishTeaching(c.Request.Context(), sessionToken(c), id)
	} else {
		err = h.api.PublishTeaching(c.Request.Context(), sessionToken(c), id)
	}

	if err != nil {
		h.normalizeAPIError(c, err, "Failed to update teaching status")
	} else if currentlyPublished {
		flash.Success(c, "Teaching unpublished")
	} else {
		flash.Success(c, "Teaching published")
	}
	c.Redirect(http.StatusSeeOther, "/teachings")
}

// Teaching deletion is deliberately not routed: the original console
// never wired its delete action. DeleteTeaching exists on the facade for
// when that decision lands.

func (h *Handler) renderTeachingError(c *gin.Context, form teachingForm, id, message string) {
	h.render(c, http.StatusOK, "teaching_form.html", gin.H{
		"Title":      h.teachingFormTitle(id != ""),
		"Form":       form,
		"TeachingID": id,
		"Alert":      message,
	})
}

func (h *Handler) teachingFormTitle(isEdit bool) string {
	if isEdit {
		return "Edit Teaching"
	}
	return "Create New Teaching"
}
