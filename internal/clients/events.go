package clients

import (
	"context"
	"net/http"

	"github.com/gracefellowship/admin-console/internal/models"
)

func (c *Client) ListEvents(ctx context.Context, token string) ([]models.Event, error) {
	var events []models.Event
	if err := c.do(ctx, http.MethodGet, "/events", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, token, id string) (models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+id, token, nil, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, event models.Event) (models.Event, error) {
	event.ID = ""
	var created models.Event
	if err := c.do(ctx, http.MethodPost, "/events", token, event, &created); err != nil {
		return models.Event{}, err
	}
	return created, nil
}

func (c *Client) UpdateEvent(ctx context.Context, token, id string, event models.Event) (models.Event, error) {
	event.ID = ""
	var updated models.Event
	if err := c.do(ctx, http.MethodPut, "/events/"+id, token, event, &updated); err != nil {
		return models.Event{}, err
	}
	return updated, nil
}

func (c *Client) DeleteEvent(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, token, nil, nil)
}
