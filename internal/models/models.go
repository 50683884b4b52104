package models

// EventCategory classifies an event for end-user filtering.
type EventCategory string

const (
	EventService    EventCategory = "service"
	EventFellowship EventCategory = "fellowship"
	EventConference EventCategory = "conference"
	EventOutreach   EventCategory = "outreach"
	EventOther      EventCategory = "other"
)

// TeachingCategory classifies a teaching.
type TeachingCategory string

const (
	TeachingSermon     TeachingCategory = "sermon"
	TeachingDevotional TeachingCategory = "devotional"
	TeachingStudy      TeachingCategory = "study"
	TeachingTestimony  TeachingCategory = "testimony"
	TeachingOther      TeachingCategory = "other"
)

// Event is a scheduled community occurrence. The ID and timestamps are
// assigned by the backend; create/update payloads omit the ID.
type Event struct {
	ID          string        `json:"id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Location    string        `json:"location"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Category    EventCategory `json:"category"`
	IsActive    bool          `json:"isActive"`
	CreatedAt   string        `json:"createdAt,omitempty"`
	UpdatedAt   string        `json:"updatedAt,omitempty"`
}

// Speaker is the nested author record on a teaching.
type Speaker struct {
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Teaching is a piece of published or draft content. Timestamps, including
// publishDate, travel as RFC 3339 strings; this client only displays them.
type Teaching struct {
	ID             string           `json:"id,omitempty"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Content        string           `json:"content"`
	Speaker        Speaker          `json:"speaker"`
	Scripture      string           `json:"scripture,omitempty"`
	Category       TeachingCategory `json:"category"`
	Tags           []string         `json:"tags"`
	ThumbnailURL   string           `json:"thumbnailUrl,omitempty"`
	VideoURL       string           `json:"videoUrl,omitempty"`
	AudioURL       string           `json:"audioUrl,omitempty"`
	YouTubeURL     string           `json:"youtubeUrl,omitempty"`
	YouTubeVideoID string           `json:"youtubeVideoId,omitempty"`
	IsPublished    bool             `json:"isPublished"`
	PublishDate    string           `json:"publishDate,omitempty"`
	CreatedAt      string           `json:"createdAt,omitempty"`
	UpdatedAt      string           `json:"updatedAt,omitempty"`
}

// User is the authenticated admin identity as reported by the backend.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Credentials is the login/register request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the backend reply to a successful login or registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
