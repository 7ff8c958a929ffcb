package tba

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

// EventsRequest selects which seasons to list events for. Range overrides
// Year and issues the query once per season in ascending order.
type EventsRequest struct {
	Year  int
	Range *YearRange
}

// Events retrieves all events for the requested season(s).
func (c *Client) Events(ctx context.Context, req EventsRequest) ([]Event, error) {
	ctx, span := tracer.Start(ctx, "client:Events")
	defer span.End()

	events, err := eventsQuery[Event](ctx, c, req, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return events, nil
}

// EventKeys is Events but retrieves only the key strings.
func (c *Client) EventKeys(ctx context.Context, req EventsRequest) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:EventKeys")
	defer span.End()

	keys, err := eventsQuery[string](ctx, c, req, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return keys, nil
}

func eventsQuery[T any](ctx context.Context, c *Client, req EventsRequest, keysOnly bool) ([]T, error) {
	if req.Range != nil {
		return getYears(ctx, c, *req.Range, func(year int) ([]T, error) {
			return get[[]T](ctx, c, eventsPath(year, keysOnly))
		})
	}
	if req.Year <= 0 {
		return nil, &ValidationError{
			Value:  fmt.Sprintf("%d", req.Year),
			Reason: "events require a positive year",
		}
	}
	return get[[]T](ctx, c, eventsPath(req.Year, keysOnly))
}

func eventsPath(year int, keysOnly bool) string {
	path := fmt.Sprintf("/events/%d", year)
	if keysOnly {
		path += "/keys"
	}
	return path
}

// Event looks up a single event by key, e.g. "2022iri".
func (c *Client) Event(ctx context.Context, key string) (Event, error) {
	ctx, span := tracer.Start(ctx, "client:Event")
	defer span.End()

	if err := validateEventKey(key); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Event{}, err
	}

	event, err := get[Event](ctx, c, "/event/"+key)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Event{}, err
	}
	return event, nil
}

// Districts retrieves all districts active in a season.
func (c *Client) Districts(ctx context.Context, year int) ([]District, error) {
	ctx, span := tracer.Start(ctx, "client:Districts")
	defer span.End()

	if year <= 0 {
		err := &ValidationError{Value: fmt.Sprintf("%d", year), Reason: "districts require a positive year"}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	districts, err := get[[]District](ctx, c, fmt.Sprintf("/districts/%d", year))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return districts, nil
}

// Match looks up a single match by key, e.g. "2022iri_f1m1".
func (c *Client) Match(ctx context.Context, key string) (Match, error) {
	ctx, span := tracer.Start(ctx, "client:Match")
	defer span.End()

	if err := validateMatchKey(key); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Match{}, err
	}

	m, err := get[Match](ctx, c, "/match/"+key)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Match{}, err
	}
	return m, nil
}

// Status probes the API's health and season metadata.
func (c *Client) Status(ctx context.Context) (APIStatus, error) {
	ctx, span := tracer.Start(ctx, "client:Status")
	defer span.End()

	status, err := get[APIStatus](ctx, c, "/status")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return APIStatus{}, err
	}
	return status, nil
}
