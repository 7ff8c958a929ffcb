package tba

import (
	"context"
	"fmt"
	"strings"

	"bluealliance-client/lib/batch"

	"go.opentelemetry.io/otel/codes"
)

// Team is a team record as returned by the API. A Team built by NewTeam and
// one obtained from a list query support the same method set; the scoped
// methods always issue a fresh request keyed by Key, independent of whatever
// payload built the instance.
type Team struct {
	Key              string            `json:"key"`
	TeamNumber       int               `json:"team_number"`
	Nickname         string            `json:"nickname"`
	Name             string            `json:"name"`
	SchoolName       string            `json:"school_name"`
	City             string            `json:"city"`
	StateProv        string            `json:"state_prov"`
	Country          string            `json:"country"`
	Address          string            `json:"address"`
	PostalCode       string            `json:"postal_code"`
	GmapsPlaceID     string            `json:"gmaps_place_id"`
	GmapsURL         string            `json:"gmaps_url"`
	Lat              float64           `json:"lat"`
	Lng              float64           `json:"lng"`
	LocationName     string            `json:"location_name"`
	Website          string            `json:"website"`
	RookieYear       int               `json:"rookie_year"`
	Motto            string            `json:"motto"`
	HomeChampionship map[string]string `json:"home_championship"`
}

// NewTeam builds a keyed Team from a team number without issuing a request.
func NewTeam(number int) Team {
	return Team{Key: TeamKey(number), TeamNumber: number}
}

// NewTeamKey builds a keyed Team from a canonical key or bare number string.
func NewTeamKey(key string) (Team, error) {
	key, err := NormalizeTeamKey(key)
	if err != nil {
		return Team{}, err
	}
	return Team{Key: key, TeamNumber: teamNumberFromKey(key)}, nil
}

// Field looks up a field by its API (json tag) name.
func (t Team) Field(name string) (any, bool) {
	return fieldByTag(t, name)
}

func (t Team) validate() error {
	if !teamKeyRegex.MatchString(t.Key) {
		return &ValidationError{Value: t.Key, Reason: "team has no valid key"}
	}
	return nil
}

func (t Team) path(parts ...string) string {
	return "/team/" + t.Key + "/" + strings.Join(parts, "/")
}

// Events retrieves the events the team attended in a season, or in its whole
// history when year is zero.
func (t Team) Events(ctx context.Context, c *Client, year int) ([]Event, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if year == 0 {
		return get[[]Event](ctx, c, t.path("events"))
	}
	return get[[]Event](ctx, c, t.path("events", fmt.Sprintf("%d", year)))
}

// EventsInRange concatenates per-season Events in ascending year order.
func (t Team) EventsInRange(ctx context.Context, c *Client, years YearRange) ([]Event, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return getYears(ctx, c, years, func(year int) ([]Event, error) {
		return t.Events(ctx, c, year)
	})
}

// EventKeys retrieves only the keys of the team's events for a season, or
// for its whole history when year is zero.
func (t Team) EventKeys(ctx context.Context, c *Client, year int) ([]string, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if year == 0 {
		return get[[]string](ctx, c, t.path("events", "keys"))
	}
	return get[[]string](ctx, c, t.path("events", fmt.Sprintf("%d", year), "keys"))
}

// EventStatuses maps event keys to this team's status at each event of a
// season. Events with no status payload are omitted.
func (t Team) EventStatuses(ctx context.Context, c *Client, year int) (map[string]EventTeamStatus, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	raw, err := get[map[string]*EventTeamStatus](ctx, c, t.path("events", fmt.Sprintf("%d", year), "statuses"))
	if err != nil {
		return nil, err
	}

	statuses := make(map[string]EventTeamStatus, len(raw))
	for eventKey, status := range raw {
		if status == nil {
			continue
		}
		statuses[eventKey] = *status
	}
	return statuses, nil
}

// Matches retrieves the matches a team played in a season. A non-empty
// eventCode filters to matches of that event, matched against the event part
// of each match key.
func (t Team) Matches(ctx context.Context, c *Client, year int, eventCode string) ([]Match, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	matches, err := get[[]Match](ctx, c, t.path("matches", fmt.Sprintf("%d", year)))
	if err != nil {
		return nil, err
	}
	if eventCode == "" {
		return matches, nil
	}

	filtered := matches[:0]
	for _, m := range matches {
		if strings.Contains(m.EventKey, eventCode) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// MatchesInRange concatenates per-season Matches in ascending year order.
func (t Team) MatchesInRange(ctx context.Context, c *Client, years YearRange, eventCode string) ([]Match, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return getYears(ctx, c, years, func(year int) ([]Match, error) {
		return t.Matches(ctx, c, year, eventCode)
	})
}

// MatchKeys retrieves only the keys of the team's matches for a season,
// optionally filtered by event code.
func (t Team) MatchKeys(ctx context.Context, c *Client, year int, eventCode string) ([]string, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	keys, err := get[[]string](ctx, c, t.path("matches", fmt.Sprintf("%d", year), "keys"))
	if err != nil {
		return nil, err
	}
	if eventCode == "" {
		return keys, nil
	}

	filtered := keys[:0]
	for _, key := range keys {
		if strings.Contains(key, eventCode) {
			filtered = append(filtered, key)
		}
	}
	return filtered, nil
}

// Awards retrieves the awards a team has won, in one season or over its
// whole history when year is zero.
func (t Team) Awards(ctx context.Context, c *Client, year int) ([]Award, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if year == 0 {
		return get[[]Award](ctx, c, t.path("awards"))
	}
	return get[[]Award](ctx, c, t.path("awards", fmt.Sprintf("%d", year)))
}

// AwardsInRange fetches the team's full award history once and filters it to
// the given seasons; the API itself only takes a single year.
func (t Team) AwardsInRange(ctx context.Context, c *Client, years YearRange) ([]Award, error) {
	if err := years.validate(); err != nil {
		return nil, err
	}

	awards, err := t.Awards(ctx, c, 0)
	if err != nil {
		return nil, err
	}

	filtered := awards[:0]
	for _, a := range awards {
		if a.Year >= years.Start && a.Year <= years.End {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// YearsParticipated lists every season the team has competed in.
func (t Team) YearsParticipated(ctx context.Context, c *Client) ([]int, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return get[[]int](ctx, c, t.path("years_participated"))
}

// Districts lists the district the team belonged to, one entry per season.
func (t Team) Districts(ctx context.Context, c *Client) ([]District, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return get[[]District](ctx, c, t.path("districts"))
}

// Robots lists the robots the team has registered, one per named season.
func (t Team) Robots(ctx context.Context, c *Client) ([]Robot, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return get[[]Robot](ctx, c, t.path("robots"))
}

// Media retrieves the team's media for a season. A non-empty tag narrows the
// query to that media type.
func (t Team) Media(ctx context.Context, c *Client, year int, tag string) ([]Media, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if tag != "" {
		return get[[]Media](ctx, c, t.path("media", "tag", tag, fmt.Sprintf("%d", year)))
	}
	return get[[]Media](ctx, c, t.path("media", fmt.Sprintf("%d", year)))
}

// SocialMedia lists the team's social media accounts registered on the site.
func (t Team) SocialMedia(ctx context.Context, c *Client) ([]Media, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	return get[[]Media](ctx, c, t.path("social_media"))
}

// EventMatches retrieves the matches the team played at one event.
func (t Team) EventMatches(ctx context.Context, c *Client, eventKey string) ([]Match, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if err := validateEventKey(eventKey); err != nil {
		return nil, err
	}
	return get[[]Match](ctx, c, t.path("event", eventKey, "matches"))
}

// EventAwards retrieves the awards the team won at one event.
func (t Team) EventAwards(ctx context.Context, c *Client, eventKey string) ([]Award, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}
	if err := validateEventKey(eventKey); err != nil {
		return nil, err
	}
	return get[[]Award](ctx, c, t.path("event", eventKey, "awards"))
}

// EventStatus retrieves the team's status at one event.
func (t Team) EventStatus(ctx context.Context, c *Client, eventKey string) (EventTeamStatus, error) {
	if err := t.validate(); err != nil {
		return EventTeamStatus{}, err
	}
	if err := validateEventKey(eventKey); err != nil {
		return EventTeamStatus{}, err
	}
	return get[EventTeamStatus](ctx, c, t.path("event", eventKey, "status"))
}

// MaxMatch returns the team's match from a season with the greatest metric
// value; ties break to the first match in response order. An empty season
// fails with ErrEmptyResult.
func (t Team) MaxMatch(ctx context.Context, c *Client, year int, metric func(Match) float64) (Match, error) {
	ctx, span := tracer.Start(ctx, "team:MaxMatch")
	defer span.End()

	matches, err := t.Matches(ctx, c, year, "")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Match{}, err
	}
	return batch.MaxBy(matches, metric)
}

// MinMatch is MaxMatch under the smallest metric value.
func (t Team) MinMatch(ctx context.Context, c *Client, year int, metric func(Match) float64) (Match, error) {
	ctx, span := tracer.Start(ctx, "team:MinMatch")
	defer span.End()

	matches, err := t.Matches(ctx, c, year, "")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Match{}, err
	}
	return batch.MinBy(matches, metric)
}

// AverageMatchScore returns the mean of metric across the team's matches in
// a season.
func (t Team) AverageMatchScore(ctx context.Context, c *Client, year int, metric func(Match) float64) (float64, error) {
	ctx, span := tracer.Start(ctx, "team:AverageMatchScore")
	defer span.End()

	matches, err := t.Matches(ctx, c, year, "")
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	return batch.MeanBy(matches, metric)
}
