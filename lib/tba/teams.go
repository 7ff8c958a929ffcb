package tba

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/codes"
)

// TeamsRequest selects which slice of the team list to fetch.
//
// With Page set, exactly one 500-team page is requested. With Page unset,
// pages are requested sequentially until the first empty page. Year limits
// the list to teams that played that season; Range overrides Year and issues
// the full query once per season in ascending order. Year zero and a nil
// Range mean every team ever registered.
type TeamsRequest struct {
	Year  int
	Range *YearRange
	Page  *int
}

// Teams retrieves teams according to req.
func (c *Client) Teams(ctx context.Context, req TeamsRequest) ([]Team, error) {
	ctx, span := tracer.Start(ctx, "client:Teams")
	defer span.End()

	teams, err := teamsQuery[Team](ctx, c, req, false)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return teams, nil
}

// TeamKeys is Teams but retrieves only the key strings.
func (c *Client) TeamKeys(ctx context.Context, req TeamsRequest) ([]string, error) {
	ctx, span := tracer.Start(ctx, "client:TeamKeys")
	defer span.End()

	keys, err := teamsQuery[string](ctx, c, req, true)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return keys, nil
}

func teamsQuery[T any](ctx context.Context, c *Client, req TeamsRequest, keysOnly bool) ([]T, error) {
	if req.Range != nil {
		return getYears(ctx, c, *req.Range, func(year int) ([]T, error) {
			yearReq := req
			yearReq.Range = nil
			yearReq.Year = year
			return teamsQuery[T](ctx, c, yearReq, keysOnly)
		})
	}
	if req.Page != nil {
		return get[[]T](ctx, c, teamsPath(req.Year, *req.Page, keysOnly))
	}
	return getPages[T](ctx, c, func(page int) string {
		return teamsPath(req.Year, page, keysOnly)
	})
}

func teamsPath(year, page int, keysOnly bool) string {
	path := fmt.Sprintf("/teams/%d", page)
	if year != 0 {
		path = fmt.Sprintf("/teams/%d/%d", year, page)
	}
	if keysOnly {
		path += "/keys"
	}
	return path
}

// Team looks up a single team. The key may be canonical ("frc4099") or a
// bare team number ("4099").
func (c *Client) Team(ctx context.Context, key string) (Team, error) {
	ctx, span := tracer.Start(ctx, "client:Team")
	defer span.End()

	key, err := NormalizeTeamKey(key)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Team{}, err
	}

	team, err := get[Team](ctx, c, "/team/"+key)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Team{}, err
	}
	return team, nil
}
