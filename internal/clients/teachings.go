package clients

import (
	"context"
	"net/http"

	"github.com/gracefellowship/admin-console/internal/models"
)

func (c *Client) ListTeachings(ctx context.Context, token string) ([]models.Teaching, error) {
	var teachings []models.Teaching
	if err := c.do(ctx, http.MethodGet, "/teachings", token, nil, &teachings); err != nil {
		return nil, err
	}
	return teachings, nil
}

func (c *Client) GetTeaching(ctx context.Context, token, id string) (models.Teaching, error) {
	var teaching models.Teaching
	if err := c.do(ctx, http.MethodGet, "/teachings/"+id, token, nil, &teaching); err != nil {
		return models.Teaching{}, err
	}
	return teaching, nil
}

func (c *Client) CreateTeaching(ctx context.Context, token string, teaching models.Teaching) (models.Teaching, error) {
	teaching.ID = ""
	var created models.Teaching
	if err := c.do(ctx, http.MethodPost, "/teachings", token, teaching, &created); err != nil {
		return models.Teaching{}, err
	}
	return created, nil
}

func (c *Client) UpdateTeaching(ctx context.Context, token, id string, teaching models.Teaching) (models.Teaching, error) {
	teaching.ID = ""
	var updated models.Teaching
	if err := c.do(ctx, http.MethodPut, "/teachings/"+id, token, teaching, &updated); err != nil {
		return models.Teaching{}, err
	}
	return updated, nil
}

func (c *Client) DeleteTeaching(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/teachings/"+id, token, nil, nil)
}

// PublishTeaching and UnpublishTeaching are dedicated state transitions,
// not generic field updates; neither takes a body.
func (c *Client) PublishTeaching(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPatch, "/teachings/"+id+"/publish", token, nil, nil)
}

func (c *Client) UnpublishTeaching(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodPatch, "/teachings/"+id+"/unpublish", token, nil, nil)
}
