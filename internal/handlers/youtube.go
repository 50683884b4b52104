package handlers

import "regexp"

// Recognizes youtube.com/watch?v=ID, youtube.com/embed/ID,
// youtube.com/v/ID and youtu.be/ID. Video ids are exactly 11 URL-safe
// characters.
var youTubeIDPattern = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:[^#]*&)?v=|embed/|v/)|youtu\.be/)([A-Za-z0-9_-]{11})`)

// extractYouTubeID derives the video id from a pasted URL, or returns ""
// when the URL does not match any known form.
func extractYouTubeID(url string) string {
	if url == "" {
		return ""
	}
	match := youTubeIDPattern.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	return match[1]
}

// youTubeThumbnailURL is the externally hosted thumbnail for a video id,
// used as the image preview when no local image has been staged.
func youTubeThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}
