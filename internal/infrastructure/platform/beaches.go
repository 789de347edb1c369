package platform

import (
	"context"
	"net/http"
	"net/url"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"
)

var _ interfaces.IBeachDirectory = (*Client)(nil)

func (c *Client) ListBeaches(ctx context.Context) ([]entities.Beach, error) {
	var beaches []entities.Beach
	if err := c.do(ctx, http.MethodGet, "/beaches", "", nil, &beaches); err != nil {
		return nil, err
	}
	return beaches, nil
}

func (c *Client) GetBeach(ctx context.Context, id string) (entities.Beach, error) {
	var beach entities.Beach
	if err := c.do(ctx, http.MethodGet, "/beaches/"+url.PathEscape(id), "", nil, &beach); err != nil {
		return entities.Beach{}, err
	}
	return beach, nil
}
