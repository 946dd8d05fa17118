// Package consumerclient reads stored purchases from the consumer service over HTTP.
package consumerclient

import (
	"context"
	"net/http"

	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/requestid"
	"purchase-pipeline/internal/usecase/queries"
	"purchase-pipeline/internal/usecase/readmodel"

	"github.com/go-resty/resty/v2"
)

const (
	pathPurchases       = "/purchases"
	pathPurchasesByUser = "/purchases/{userid}"
)

type Client struct {
	rest *resty.Client
}

// NewClient builds a client with no retries; a failed read is reported to the caller as is.
func NewClient(cfg config.DownstreamConfig) *Client {
	rest := resty.New().
		SetBaseURL(cfg.ConsumerURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	return &Client{rest: rest}
}

func (c *Client) FetchByUser(ctx context.Context, userID string) ([]*readmodel.PurchaseRM, error) {
	req := c.request(ctx).SetPathParam("userid", userID)
	return c.fetch(req, pathPurchasesByUser)
}

func (c *Client) FetchRecent(ctx context.Context) ([]*readmodel.PurchaseRM, error) {
	return c.fetch(c.request(ctx), pathPurchases)
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.rest.R().SetContext(ctx)
	if id := requestid.FromContext(ctx); id != "" {
		req.SetHeader(requestid.Header, id)
	}
	return req
}

func (c *Client) fetch(req *resty.Request, path string) ([]*readmodel.PurchaseRM, error) {
	var items []*readmodel.PurchaseRM
	resp, err := req.SetResult(&items).Get(path)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "GET %s", path), queries.ErrDownstreamUnavailable)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		if items == nil {
			items = []*readmodel.PurchaseRM{}
		}
		return items, nil
	default:
		return nil, errs.Mark(
			errs.Newf("GET %s: consumer responded %d", resp.Request.URL, resp.StatusCode()),
			queries.ErrDownstreamUnavailable,
		)
	}
}
