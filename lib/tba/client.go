// Package tba is a typed client for The Blue Alliance API v3, the public
// read API for FIRST Robotics Competition data.
package tba

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"bluealliance-client/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("tba")

const DefaultBaseURL = "https://www.thebluealliance.com/api/v3"

// PageSize is the fixed size of a team list page on the API.
const PageSize = 500

type ClientOptions struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// APIKey takes priority over the TBA_API_KEY and API_KEY environment
	// variables.
	APIKey string
	// Transport overrides the underlying round tripper, mainly for tests.
	Transport http.RoundTripper
}

// Client holds the authenticated HTTP session every query goes through.
// It is meant for a single logical caller; requests issued through it are
// sequential and deterministic in order.
type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("TBA_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetHeader("X-TBA-Auth-Key", apiKey)
	client.SetTimeout(time.Second * 30)
	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}

	telemetry.InstrumentResty(client, "tba/http")

	return &Client{http: client}, nil
}

// Close releases idle connections held by the session.
func (c *Client) Close() {
	c.http.GetClient().CloseIdleConnections()
}

// get fetches a relative path and decodes the JSON response into T.
func get[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T

	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return out, &RequestError{Path: path, Err: err}
	}
	if res.StatusCode() < 200 || res.StatusCode() > 299 {
		return out, &StatusError{
			StatusCode: res.StatusCode(),
			Path:       path,
			Body:       strings.TrimSpace(string(res.Body())),
		}
	}
	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return out, &RequestError{Path: path, Err: err}
	}
	return out, nil
}

// getPages fetches 0-based pages sequentially until the first empty page.
func getPages[T any](ctx context.Context, c *Client, pathFor func(page int) string) ([]T, error) {
	var all []T
	for page := 0; ; page++ {
		items, err := get[[]T](ctx, c, pathFor(page))
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return all, nil
		}
		all = append(all, items...)
	}
}

// getYears issues the query once per year in ascending order and
// concatenates the results, preserving response order within each year.
func getYears[T any](ctx context.Context, c *Client, years YearRange, fetch func(year int) ([]T, error)) ([]T, error) {
	if err := years.validate(); err != nil {
		return nil, err
	}

	var all []T
	for year := years.Start; year <= years.End; year++ {
		items, err := fetch(year)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return all, nil
}

// YearRange is an inclusive range of seasons.
type YearRange struct {
	Start int
	End   int
}

func (r YearRange) validate() error {
	if r.Start > r.End || r.Start <= 0 {
		return &ValidationError{
			Value:  fmt.Sprintf("%d-%d", r.Start, r.End),
			Reason: "year range must be ascending and positive",
		}
	}
	return nil
}
