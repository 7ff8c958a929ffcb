package tba

import (
	"encoding/json"
	"time"
)

// Match is a match record. Relationships to teams and events are expressed
// as string keys, resolved by further requests rather than in-memory links.
type Match struct {
	Key             string          `json:"key"`
	CompLevel       string          `json:"comp_level"`
	SetNumber       int             `json:"set_number"`
	MatchNumber     int             `json:"match_number"`
	Alliances       MatchAlliances  `json:"alliances"`
	WinningAlliance string          `json:"winning_alliance"`
	EventKey        string          `json:"event_key"`
	Time            int64           `json:"time"`
	ActualTime      int64           `json:"actual_time"`
	PredictedTime   int64           `json:"predicted_time"`
	PostResultTime  int64           `json:"post_result_time"`
	ScoreBreakdown  json.RawMessage `json:"score_breakdown"`
	Videos          []MatchVideo    `json:"videos"`
}

type MatchAlliances struct {
	Red  MatchAlliance `json:"red"`
	Blue MatchAlliance `json:"blue"`
}

type MatchAlliance struct {
	Score             int      `json:"score"`
	TeamKeys          []string `json:"team_keys"`
	SurrogateTeamKeys []string `json:"surrogate_team_keys"`
	DqTeamKeys        []string `json:"dq_team_keys"`
}

type MatchVideo struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// Field looks up a field by its API (json tag) name.
func (m Match) Field(name string) (any, bool) {
	return fieldByTag(m, name)
}

// ScheduledTime converts the scheduled unix timestamp; the zero time means
// the schedule was never published.
func (m Match) ScheduledTime() time.Time {
	return unixOrZero(m.Time)
}

// StartedTime converts the actual start unix timestamp.
func (m Match) StartedTime() time.Time {
	return unixOrZero(m.ActualTime)
}

func unixOrZero(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// TotalScore is the cumulative score of both alliances.
func (m Match) TotalScore() int {
	return m.Alliances.Red.Score + m.Alliances.Blue.Score
}

// AllianceOf returns the alliance containing the team, surrogates and
// disqualifications included. The second return is false when the team did
// not play in this match.
func (m Match) AllianceOf(teamKey string) (MatchAlliance, bool) {
	for _, alliance := range []MatchAlliance{m.Alliances.Red, m.Alliances.Blue} {
		for _, keys := range [][]string{alliance.TeamKeys, alliance.SurrogateTeamKeys, alliance.DqTeamKeys} {
			for _, key := range keys {
				if key == teamKey {
					return alliance, true
				}
			}
		}
	}
	return MatchAlliance{}, false
}

// ScoreOf returns the score of the alliance the team played on, or zero when
// the team did not play. Useful as a metric for the aggregate helpers.
func (m Match) ScoreOf(teamKey string) int {
	alliance, ok := m.AllianceOf(teamKey)
	if !ok {
		return 0
	}
	return alliance.Score
}
