package tba

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTeam(t *testing.T) {
	team := NewTeam(4099)
	require.Equal(t, "frc4099", team.Key)
	require.Equal(t, 4099, team.TeamNumber)
	require.NoError(t, team.validate())
}

func TestNewTeamKey(t *testing.T) {
	team, err := NewTeamKey("frc254")
	require.NoError(t, err)
	require.Equal(t, 254, team.TeamNumber)

	_, err = NewTeamKey("254abc")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestTeamEvents(t *testing.T) {
	srv, client := newTestServer(t, map[string]any{
		"/team/frc4099/events/2022": []map[string]any{
			{"key": "2022chcmp", "year": 2022, "event_code": "chcmp"},
		},
		"/team/frc4099/events": []map[string]any{
			{"key": "2021aaa", "year": 2021, "event_code": "aaa"},
			{"key": "2022chcmp", "year": 2022, "event_code": "chcmp"},
		},
	})

	team := NewTeam(4099)

	events, err := team.Events(context.Background(), client, 2022)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "2022chcmp", events[0].Key)

	all, err := team.Events(context.Background(), client, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)

	require.Equal(t, []string{"/team/frc4099/events/2022", "/team/frc4099/events"}, srv.requestedPaths())
}

func TestTeamMatchesEventCodeFilter(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/team/frc1/matches/2022": []map[string]any{
			{"key": "2022iri_qm1", "event_key": "2022iri"},
			{"key": "2022chcmp_qm3", "event_key": "2022chcmp"},
			{"key": "2022iri_f1m1", "event_key": "2022iri"},
		},
	})

	team := NewTeam(1)

	all, err := team.Matches(context.Background(), client, 2022, "")
	require.NoError(t, err)
	require.Len(t, all, 3)

	iri, err := team.Matches(context.Background(), client, 2022, "iri")
	require.NoError(t, err)
	require.Len(t, iri, 2)
	require.Equal(t, "2022iri_qm1", iri[0].Key)
	require.Equal(t, "2022iri_f1m1", iri[1].Key)
}

func TestTeamEventStatusesOmitsNull(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/team/frc1/events/2022/statuses": map[string]any{
			"2022iri":   map[string]any{"overall_status_str": "won"},
			"2022chcmp": nil,
		},
	})

	statuses, err := NewTeam(1).EventStatuses(context.Background(), client, 2022)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	require.Equal(t, "won", statuses["2022iri"].OverallStatus)
}

func TestTeamAwardsInRange(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/team/frc1/awards": []map[string]any{
			{"name": "Winner", "year": 2019, "event_key": "2019aaa"},
			{"name": "Finalist", "year": 2021, "event_key": "2021bbb"},
			{"name": "Winner", "year": 2022, "event_key": "2022ccc"},
			{"name": "Impact", "year": 2023, "event_key": "2023ddd"},
		},
	})

	awards, err := NewTeam(1).AwardsInRange(context.Background(), client, YearRange{Start: 2021, End: 2022})
	require.NoError(t, err)
	require.Len(t, awards, 2)
	require.Equal(t, 2021, awards[0].Year)
	require.Equal(t, 2022, awards[1].Year)
}

func TestTeamYearsParticipated(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/team/frc1/years_participated": []int{2019, 2020, 2022},
	})

	years, err := NewTeam(1).YearsParticipated(context.Background(), client)
	require.NoError(t, err)
	require.Equal(t, []int{2019, 2020, 2022}, years)
}

func TestTeamMediaPaths(t *testing.T) {
	srv, client := newTestServer(t, map[string]any{
		"/team/frc1/media/2022":                     []map[string]any{{"type": "imgur", "foreign_key": "abc"}},
		"/team/frc1/media/tag/chairmans_video/2022": []map[string]any{},
		"/team/frc1/social_media":                   []map[string]any{{"type": "github-profile", "foreign_key": "frc1"}},
	})

	team := NewTeam(1)
	ctx := context.Background()

	media, err := team.Media(ctx, client, 2022, "")
	require.NoError(t, err)
	require.Len(t, media, 1)

	_, err = team.Media(ctx, client, 2022, "chairmans_video")
	require.NoError(t, err)

	social, err := team.SocialMedia(ctx, client)
	require.NoError(t, err)
	require.Equal(t, "github-profile", social[0].Type)

	require.Equal(t, []string{
		"/team/frc1/media/2022",
		"/team/frc1/media/tag/chairmans_video/2022",
		"/team/frc1/social_media",
	}, srv.requestedPaths())
}

func TestTeamMaxMatchFirstOnTie(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/team/frc1/matches/2022": []map[string]any{
			{
				"key": "2022iri_qm1",
				"alliances": map[string]any{
					"red":  map[string]any{"score": 30},
					"blue": map[string]any{"score": 20},
				},
			},
			{
				"key": "2022iri_qm2",
				"alliances": map[string]any{
					"red":  map[string]any{"score": 25},
					"blue": map[string]any{"score": 25},
				},
			},
			{
				"key": "2022iri_qm3",
				"alliances": map[string]any{
					"red":  map[string]any{"score": 10},
					"blue": map[string]any{"score": 15},
				},
			},
		},
	})

	team := NewTeam(1)
	ctx := context.Background()
	totalScore := func(m Match) float64 { return float64(m.TotalScore()) }

	max, err := team.MaxMatch(ctx, client, 2022, totalScore)
	require.NoError(t, err)
	require.Equal(t, "2022iri_qm1", max.Key)

	min, err := team.MinMatch(ctx, client, 2022, totalScore)
	require.NoError(t, err)
	require.Equal(t, "2022iri_qm3", min.Key)

	avg, err := team.AverageMatchScore(ctx, client, 2022, totalScore)
	require.NoError(t, err)
	require.InDelta(t, 125.0/3, avg, 1e-9)
}

func TestTeamMaxMatchEmpty(t *testing.T) {
	_, client := newTestServer(t, map[string]any{
		"/team/frc1/matches/2022": []map[string]any{},
	})

	_, err := NewTeam(1).MaxMatch(context.Background(), client, 2022, func(m Match) float64 {
		return float64(m.TotalScore())
	})
	require.ErrorIs(t, err, ErrEmptyResult)
}
