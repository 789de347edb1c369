package platform

import (
	"context"
	"net/http"
	"net/url"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"
)

var _ interfaces.IOrderService = (*Client)(nil)

func (c *Client) ListMine(ctx context.Context, token string) ([]entities.Order, error) {
	var orders []entities.Order
	if err := c.do(ctx, http.MethodGet, "/orders/mine", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) ListActive(ctx context.Context, token string) ([]entities.Order, error) {
	var orders []entities.Order
	if err := c.do(ctx, http.MethodGet, "/orders/active", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token, id string) (entities.Order, error) {
	var order entities.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(id), token, nil, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, payload entities.OrderPayload) (entities.Order, error) {
	var order entities.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, payload, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (c *Client) ExtendOrder(ctx context.Context, token, id string, additionalHours int) (entities.Order, error) {
	body := struct {
		AdditionalHours int `json:"additionalHours"`
	}{AdditionalHours: additionalHours}

	var order entities.Order
	if err := c.do(ctx, http.MethodPost, "/orders/"+url.PathEscape(id)+"/extend", token, body, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}
