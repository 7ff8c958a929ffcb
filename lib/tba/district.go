package tba

import (
	"context"
	"fmt"
	"strings"
)

// District is a district record, e.g. the 2022 Chesapeake district "2022chs".
type District struct {
	Key          string `json:"key"`
	Year         int    `json:"year"`
	Abbreviation string `json:"abbreviation"`
	DisplayName  string `json:"display_name"`
}

// NewDistrict builds a keyed District from a season and abbreviation without
// issuing a request, e.g. NewDistrict(2022, "chs").
func NewDistrict(year int, abbreviation string) District {
	return District{
		Key:          fmt.Sprintf("%d%s", year, abbreviation),
		Year:         year,
		Abbreviation: abbreviation,
	}
}

// NewDistrictKey builds a keyed District from a key like "2022chs".
func NewDistrictKey(key string) (District, error) {
	if err := validateDistrictKey(key); err != nil {
		return District{}, err
	}
	year, abbreviation := splitYearKey(key)
	return District{Key: key, Year: year, Abbreviation: abbreviation}, nil
}

// Field looks up a field by its API (json tag) name.
func (d District) Field(name string) (any, bool) {
	return fieldByTag(d, name)
}

func (d District) validate() error {
	return validateDistrictKey(d.Key)
}

func (d District) path(parts ...string) string {
	return "/district/" + d.Key + "/" + strings.Join(parts, "/")
}

// Events retrieves every event held in the district's season.
func (d District) Events(ctx context.Context, c *Client) ([]Event, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	return get[[]Event](ctx, c, d.path("events"))
}

// EventKeys retrieves only the keys of the district's events.
func (d District) EventKeys(ctx context.Context, c *Client) ([]string, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	return get[[]string](ctx, c, d.path("events", "keys"))
}

// Teams retrieves every team registered in the district.
func (d District) Teams(ctx context.Context, c *Client) ([]Team, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	return get[[]Team](ctx, c, d.path("teams"))
}

// TeamKeys retrieves only the keys of the district's teams.
func (d District) TeamKeys(ctx context.Context, c *Client) ([]string, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	return get[[]string](ctx, c, d.path("teams", "keys"))
}

// Rankings retrieves the district point standings for the season.
func (d District) Rankings(ctx context.Context, c *Client) ([]DistrictRanking, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	return get[[]DistrictRanking](ctx, c, d.path("rankings"))
}

// DistrictRanking is one team's standing in a district season.
type DistrictRanking struct {
	TeamKey     string                `json:"team_key"`
	Rank        int                   `json:"rank"`
	RookieBonus int                   `json:"rookie_bonus"`
	PointTotal  int                   `json:"point_total"`
	EventPoints []DistrictEventPoints `json:"event_points"`
}

// DistrictEventPoints breaks a team's district points down for one event.
type DistrictEventPoints struct {
	EventKey       string `json:"event_key"`
	DistrictCMP    bool   `json:"district_cmp"`
	AlliancePoints int    `json:"alliance_points"`
	AwardPoints    int    `json:"award_points"`
	QualPoints     int    `json:"qual_points"`
	ElimPoints     int    `json:"elim_points"`
	Total          int    `json:"total"`
}
