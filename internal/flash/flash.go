// Package flash implements one-shot notifications: an action sets a
// message, the next rendered page shows it once. This stands in for the
// transient toasts of a client-side UI.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

func Success(c *gin.Context, text string) {
	set(c, Message{Level: "success", Text: text})
}

func Error(c *gin.Context, text string) {
	set(c, Message{Level: "error", Text: text})
}

func set(c *gin.Context, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, base64.URLEncoding.EncodeToString(data), 60, "/", "", false, true)
}

// Pop returns the pending message, if any, and clears it.
func Pop(c *gin.Context) (Message, bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return Message{}, false
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return Message{}, false
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, false
	}
	return msg, true
}
