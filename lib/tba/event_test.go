package tba

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewEventKey(t *testing.T) {
	event, err := NewEventKey("2022iri")
	require.NoError(t, err)
	require.Equal(t, 2022, event.Year)
	require.Equal(t, "iri", event.EventCode)

	_, err = NewEventKey("iri2022")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEventDates(t *testing.T) {
	event := Event{StartDate: "2022-08-11", EndDate: "2022-08-13"}
	start, end := event.Dates()
	require.Equal(t, time.Date(2022, 8, 11, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2022, 8, 13, 0, 0, 0, 0, time.UTC), end)

	start, end = Event{}.Dates()
	require.True(t, start.IsZero())
	require.True(t, end.IsZero())
}

func TestEventTeamsAndMatches(t *testing.T) {
	srv, client := newTestServer(t, map[string]any{
		"/event/2022iri/teams": []map[string]any{
			{"key": "frc1", "team_number": 1},
		},
		"/event/2022iri/matches/keys": []string{"2022iri_qm1", "2022iri_qm2"},
	})

	event := NewEvent(2022, "iri")
	ctx := context.Background()

	teams, err := event.Teams(ctx, client)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	keys, err := event.MatchKeys(ctx, client)
	require.NoError(t, err)
	require.Equal(t, []string{"2022iri_qm1", "2022iri_qm2"}, keys)

	require.Equal(t, []string{"/event/2022iri/teams", "/event/2022iri/matches/keys"}, srv.requestedPaths())
}

func TestEventOPRs(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/event/2022iri/oprs": map[string]any{
			"oprs":  map[string]float64{"frc1": 60, "frc2": 40},
			"dprs":  map[string]float64{"frc1": 20, "frc2": 30},
			"ccwms": map[string]float64{},
		},
	})

	oprs, err := NewEvent(2022, "iri").OPRs(context.Background(), client)
	require.NoError(t, err)

	avg, err := oprs.Average("opr")
	require.NoError(t, err)
	require.InDelta(t, 50.0, avg, 1e-9)

	_, err = oprs.Average("ccwm")
	require.ErrorIs(t, err, ErrEmptyResult)

	_, err = oprs.Average("elo")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestEventRankingsStatsFor(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/event/2022iri/rankings": map[string]any{
			"rankings": []map[string]any{
				{
					"team_key":    "frc1",
					"rank":        1,
					"extra_stats": []float64{42},
					"sort_orders": []float64{3.5, 120},
				},
			},
			"extra_stats_info": []map[string]any{
				{"name": "Total Ranking Points", "precision": 0},
			},
			"sort_order_info": []map[string]any{
				{"name": "Ranking Score", "precision": 2},
				{"name": "Avg Match", "precision": 0},
			},
		},
	})

	rankings, err := NewEvent(2022, "iri").Rankings(context.Background(), client)
	require.NoError(t, err)

	stats, ok := rankings.StatsFor("frc1")
	require.True(t, ok)
	require.Equal(t, map[string]float64{
		"Total Ranking Points": 42,
		"Ranking Score":        3.5,
		"Avg Match":            120,
	}, stats)

	_, ok = rankings.StatsFor("frc99")
	require.False(t, ok)
}

func TestMatchAllianceOf(t *testing.T) {
	m := Match{
		Alliances: MatchAlliances{
			Red:  MatchAlliance{Score: 30, TeamKeys: []string{"frc1", "frc2", "frc3"}},
			Blue: MatchAlliance{Score: 20, TeamKeys: []string{"frc4", "frc5"}, SurrogateTeamKeys: []string{"frc6"}},
		},
	}

	red, ok := m.AllianceOf("frc2")
	require.True(t, ok)
	require.Equal(t, 30, red.Score)

	blue, ok := m.AllianceOf("frc6")
	require.True(t, ok)
	require.Equal(t, 20, blue.Score)

	_, ok = m.AllianceOf("frc99")
	require.False(t, ok)

	require.Equal(t, 50, m.TotalScore())
	require.Equal(t, 30, m.ScoreOf("frc1"))
	require.Equal(t, 0, m.ScoreOf("frc99"))
}

func TestDistrictRankings(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/district/2022chs/rankings": []map[string]any{
			{"team_key": "frc1", "rank": 1, "point_total": 120},
			{"team_key": "frc2", "rank": 2, "point_total": 90},
		},
	})

	district, err := NewDistrictKey("2022chs")
	require.NoError(t, err)

	rankings, err := district.Rankings(context.Background(), client)
	require.NoError(t, err)
	require.Len(t, rankings, 2)
	require.Equal(t, "frc1", rankings[0].TeamKey)
	require.Equal(t, 120, rankings[0].PointTotal)
}
