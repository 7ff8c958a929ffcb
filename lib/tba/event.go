package tba

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bluealliance-client/lib/batch"

	"go.opentelemetry.io/otel/codes"
)

const dateFormat = "2006-01-02"

// Event is an event record, e.g. a regional or a district championship.
type Event struct {
	Key               string    `json:"key"`
	Name              string    `json:"name"`
	EventCode         string    `json:"event_code"`
	EventType         int       `json:"event_type"`
	EventTypeString   string    `json:"event_type_string"`
	District          *District `json:"district"`
	City              string    `json:"city"`
	StateProv         string    `json:"state_prov"`
	Country           string    `json:"country"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	Year              int       `json:"year"`
	ShortName         string    `json:"short_name"`
	Week              *int      `json:"week"`
	Address           string    `json:"address"`
	PostalCode        string    `json:"postal_code"`
	GmapsPlaceID      string    `json:"gmaps_place_id"`
	GmapsURL          string    `json:"gmaps_url"`
	Lat               float64   `json:"lat"`
	Lng               float64   `json:"lng"`
	LocationName      string    `json:"location_name"`
	Timezone          string    `json:"timezone"`
	Website           string    `json:"website"`
	FirstEventID      string    `json:"first_event_id"`
	FirstEventCode    string    `json:"first_event_code"`
	Webcasts          []Webcast `json:"webcasts"`
	DivisionKeys      []string  `json:"division_keys"`
	ParentEventKey    string    `json:"parent_event_key"`
	PlayoffType       int       `json:"playoff_type"`
	PlayoffTypeString string    `json:"playoff_type_string"`
}

type Webcast struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	Date    string `json:"date"`
	File    string `json:"file"`
}

// NewEvent builds a keyed Event from a season and event code without issuing
// a request, e.g. NewEvent(2022, "iri").
func NewEvent(year int, code string) Event {
	return Event{Key: fmt.Sprintf("%d%s", year, code), Year: year, EventCode: code}
}

// NewEventKey builds a keyed Event from a key like "2022iri".
func NewEventKey(key string) (Event, error) {
	if err := validateEventKey(key); err != nil {
		return Event{}, err
	}
	year, code := splitYearKey(key)
	return Event{Key: key, Year: year, EventCode: code}, nil
}

// Field looks up a field by its API (json tag) name.
func (e Event) Field(name string) (any, bool) {
	return fieldByTag(e, name)
}

// Dates parses the start and end dates; zero times when unset.
func (e Event) Dates() (start, end time.Time) {
	start, _ = time.Parse(dateFormat, e.StartDate)
	end, _ = time.Parse(dateFormat, e.EndDate)
	return start, end
}

func (e Event) validate() error {
	return validateEventKey(e.Key)
}

func (e Event) path(parts ...string) string {
	return "/event/" + e.Key + "/" + strings.Join(parts, "/")
}

// Teams retrieves every team that attended the event.
func (e Event) Teams(ctx context.Context, c *Client) ([]Team, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return get[[]Team](ctx, c, e.path("teams"))
}

// TeamKeys retrieves only the keys of the attending teams.
func (e Event) TeamKeys(ctx context.Context, c *Client) ([]string, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return get[[]string](ctx, c, e.path("teams", "keys"))
}

// TeamStatuses maps team keys to each team's status at the event. Teams with
// no status payload are omitted.
func (e Event) TeamStatuses(ctx context.Context, c *Client) (map[string]EventTeamStatus, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	raw, err := get[map[string]*EventTeamStatus](ctx, c, e.path("teams", "statuses"))
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]EventTeamStatus, len(raw))
	for teamKey, status := range raw {
		if status == nil {
			continue
		}
		statuses[teamKey] = *status
	}
	return statuses, nil
}

// Matches retrieves every match played at the event.
func (e Event) Matches(ctx context.Context, c *Client) ([]Match, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return get[[]Match](ctx, c, e.path("matches"))
}

// MatchKeys retrieves only the keys of the event's matches.
func (e Event) MatchKeys(ctx context.Context, c *Client) ([]string, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return get[[]string](ctx, c, e.path("matches", "keys"))
}

// Alliances retrieves the playoff alliances picked at the event.
func (e Event) Alliances(ctx context.Context, c *Client) ([]EventAlliance, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return get[[]EventAlliance](ctx, c, e.path("alliances"))
}

// Awards retrieves every award handed out at the event.
func (e Event) Awards(ctx context.Context, c *Client) ([]Award, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return get[[]Award](ctx, c, e.path("awards"))
}

// DistrictPoints retrieves per-team district points for the event; nil maps
// when the event awards none.
func (e Event) DistrictPoints(ctx context.Context, c *Client) (EventDistrictPoints, error) {
	if err := e.validate(); err != nil {
		return EventDistrictPoints{}, err
	}
	return get[EventDistrictPoints](ctx, c, e.path("district_points"))
}

// Insights retrieves year-specific qualification and playoff insights. The
// payload shape changes every game, so both halves stay raw JSON.
func (e Event) Insights(ctx context.Context, c *Client) (EventInsights, error) {
	if err := e.validate(); err != nil {
		return EventInsights{}, err
	}
	return get[EventInsights](ctx, c, e.path("insights"))
}

// OPRs retrieves the calculated contribution metrics for teams at the event.
func (e Event) OPRs(ctx context.Context, c *Client) (OPRs, error) {
	if err := e.validate(); err != nil {
		return OPRs{}, err
	}
	return get[OPRs](ctx, c, e.path("oprs"))
}

// Predictions retrieves the site's match predictions for the event. The
// endpoint is in beta upstream and its shape is year-specific, so the result
// stays raw JSON.
func (e Event) Predictions(ctx context.Context, c *Client) (json.RawMessage, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	return get[json.RawMessage](ctx, c, e.path("predictions"))
}

// Rankings retrieves the qualification rankings of the event, along with the
// metadata naming each extra-stat and sort-order column.
func (e Event) Rankings(ctx context.Context, c *Client) (EventRankings, error) {
	if err := e.validate(); err != nil {
		return EventRankings{}, err
	}
	return get[EventRankings](ctx, c, e.path("rankings"))
}

// MaxMatch returns the event match with the greatest metric value; ties
// break to the first match in response order. An event with no matches fails
// with ErrEmptyResult.
func (e Event) MaxMatch(ctx context.Context, c *Client, metric func(Match) float64) (Match, error) {
	ctx, span := tracer.Start(ctx, "event:MaxMatch")
	defer span.End()

	matches, err := e.Matches(ctx, c)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Match{}, err
	}
	return batch.MaxBy(matches, metric)
}

// MinMatch is MaxMatch under the smallest metric value.
func (e Event) MinMatch(ctx context.Context, c *Client, metric func(Match) float64) (Match, error) {
	ctx, span := tracer.Start(ctx, "event:MinMatch")
	defer span.End()

	matches, err := e.Matches(ctx, c)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Match{}, err
	}
	return batch.MinBy(matches, metric)
}

// AverageMatchScore returns the mean of metric across the event's matches.
func (e Event) AverageMatchScore(ctx context.Context, c *Client, metric func(Match) float64) (float64, error) {
	ctx, span := tracer.Start(ctx, "event:AverageMatchScore")
	defer span.End()

	matches, err := e.Matches(ctx, c)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return batch.MeanBy(matches, metric)
}
