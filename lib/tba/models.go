package tba

import (
	"encoding/json"
	"fmt"
)

// Award is one award handed out at an event.
type Award struct {
	Name          string           `json:"name"`
	AwardType     int              `json:"award_type"`
	EventKey      string           `json:"event_key"`
	RecipientList []AwardRecipient `json:"recipient_list"`
	Year          int              `json:"year"`
}

type AwardRecipient struct {
	TeamKey string `json:"team_key"`
	Awardee string `json:"awardee"`
}

func (a Award) Field(name string) (any, bool) {
	return fieldByTag(a, name)
}

// Media is a photo, video or social account associated with a team.
type Media struct {
	Type       string          `json:"type"`
	ForeignKey string          `json:"foreign_key"`
	Details    json.RawMessage `json:"details"`
	Preferred  bool            `json:"preferred"`
	DirectURL  string          `json:"direct_url"`
	ViewURL    string          `json:"view_url"`
}

func (m Media) Field(name string) (any, bool) {
	return fieldByTag(m, name)
}

// Robot is one named robot a team registered for a season.
type Robot struct {
	Key       string `json:"key"`
	RobotName string `json:"robot_name"`
	TeamKey   string `json:"team_key"`
	Year      int    `json:"year"`
}

func (r Robot) Field(name string) (any, bool) {
	return fieldByTag(r, name)
}

// APIStatus is the health and season metadata probe of the API.
type APIStatus struct {
	CurrentSeason  int          `json:"current_season"`
	MaxSeason      int          `json:"max_season"`
	IsDatafeedDown bool         `json:"is_datafeed_down"`
	DownEvents     []string     `json:"down_events"`
	IOS            AppVersions  `json:"ios"`
	Android        AppVersions  `json:"android"`
}

type AppVersions struct {
	MinAppVersion    int `json:"min_app_version"`
	LatestAppVersion int `json:"latest_app_version"`
}

func (s APIStatus) Field(name string) (any, bool) {
	return fieldByTag(s, name)
}

// WLTRecord is a win/loss/tie record.
type WLTRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// EventAlliance is one playoff alliance picked at an event.
type EventAlliance struct {
	Name     string               `json:"name"`
	Backup   *EventAllianceBackup `json:"backup"`
	Declines []string             `json:"declines"`
	Picks    []string             `json:"picks"`
	Status   EventAllianceStatus  `json:"status"`
}

type EventAllianceBackup struct {
	In  string `json:"in"`
	Out string `json:"out"`
}

type EventAllianceStatus struct {
	PlayoffAverage     float64   `json:"playoff_average"`
	Level              string    `json:"level"`
	Record             WLTRecord `json:"record"`
	CurrentLevelRecord WLTRecord `json:"current_level_record"`
	Status             string    `json:"status"`
}

// EventDistrictPoints maps team keys to district points and tiebreakers
// earned at one event.
type EventDistrictPoints struct {
	Points      map[string]TeamDistrictPoints `json:"points"`
	Tiebreakers map[string]TeamTiebreakers    `json:"tiebreakers"`
}

type TeamDistrictPoints struct {
	AlliancePoints int `json:"alliance_points"`
	AwardPoints    int `json:"award_points"`
	QualPoints     int `json:"qual_points"`
	ElimPoints     int `json:"elim_points"`
	Total          int `json:"total"`
}

type TeamTiebreakers struct {
	HighestQualScores []int `json:"highest_qual_scores"`
	QualWins          int   `json:"qual_wins"`
}

// EventInsights carries the year-specific performance insights of an event.
type EventInsights struct {
	Qual    json.RawMessage `json:"qual"`
	Playoff json.RawMessage `json:"playoff"`
}

// OPRs holds the calculated contribution metrics for every team at an event,
// keyed by team key.
type OPRs struct {
	OPRs  map[string]float64 `json:"oprs"`
	DPRs  map[string]float64 `json:"dprs"`
	CCWMs map[string]float64 `json:"ccwms"`
}

func (o OPRs) metric(name string) (map[string]float64, error) {
	switch name {
	case "opr":
		return o.OPRs, nil
	case "dpr":
		return o.DPRs, nil
	case "ccwm":
		return o.CCWMs, nil
	}
	return nil, &ValidationError{Value: name, Reason: `metric must be "opr", "dpr" or "ccwm"`}
}

// Average returns the mean of one metric ("opr", "dpr" or "ccwm") across all
// teams at the event; ErrEmptyResult when the metric was never calculated.
func (o OPRs) Average(name string) (float64, error) {
	values, err := o.metric(name)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: no %s values", ErrEmptyResult, name)
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// EventRankings is the qualification ranking table of an event, along with
// the metadata naming each extra-stat and sort-order column.
type EventRankings struct {
	Rankings       []EventRanking    `json:"rankings"`
	ExtraStatsInfo []RankingStatInfo `json:"extra_stats_info"`
	SortOrderInfo  []RankingStatInfo `json:"sort_order_info"`
}

type RankingStatInfo struct {
	Name      string `json:"name"`
	Precision int    `json:"precision"`
}

// EventRanking is one team's row in the ranking table.
type EventRanking struct {
	TeamKey       string    `json:"team_key"`
	Rank          int       `json:"rank"`
	DQ            int       `json:"dq"`
	MatchesPlayed int       `json:"matches_played"`
	QualAverage   float64   `json:"qual_average"`
	Record        WLTRecord `json:"record"`
	ExtraStats    []float64 `json:"extra_stats"`
	SortOrders    []float64 `json:"sort_orders"`
}

// StatsFor joins the column name metadata to the team's extra-stat and
// sort-order values. The second return is false when the team is not ranked.
func (r EventRankings) StatsFor(teamKey string) (map[string]float64, bool) {
	for _, ranking := range r.Rankings {
		if ranking.TeamKey != teamKey {
			continue
		}

		stats := make(map[string]float64)
		for i, info := range r.ExtraStatsInfo {
			if i < len(ranking.ExtraStats) {
				stats[info.Name] = ranking.ExtraStats[i]
			}
		}
		for i, info := range r.SortOrderInfo {
			if i < len(ranking.SortOrders) {
				stats[info.Name] = ranking.SortOrders[i]
			}
		}
		return stats, true
	}
	return nil, false
}
