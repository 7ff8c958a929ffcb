package tba

// EventTeamStatus is one team's progress through one event: qualification
// ranking, alliance pick and playoff outcome. Any of the three sections may
// be absent depending on how far the event has advanced.
type EventTeamStatus struct {
	Qual             *TeamEventQual     `json:"qual"`
	Alliance         *TeamEventAlliance `json:"alliance"`
	Playoff          *TeamEventPlayoff  `json:"playoff"`
	AllianceStatus   string             `json:"alliance_status_str"`
	PlayoffStatus    string             `json:"playoff_status_str"`
	OverallStatus    string             `json:"overall_status_str"`
	NextMatchKey     string             `json:"next_match_key"`
	LastMatchKey     string             `json:"last_match_key"`
}

type TeamEventQual struct {
	NumTeams      int               `json:"num_teams"`
	Status        string            `json:"status"`
	Ranking       TeamEventRanking  `json:"ranking"`
	SortOrderInfo []RankingStatInfo `json:"sort_order_info"`
}

type TeamEventRanking struct {
	TeamKey       string    `json:"team_key"`
	Rank          int       `json:"rank"`
	DQ            int       `json:"dq"`
	MatchesPlayed int       `json:"matches_played"`
	QualAverage   float64   `json:"qual_average"`
	Record        WLTRecord `json:"record"`
	SortOrders    []float64 `json:"sort_orders"`
}

type TeamEventAlliance struct {
	Name   string               `json:"name"`
	Number int                  `json:"number"`
	Pick   int                  `json:"pick"`
	Backup *EventAllianceBackup `json:"backup"`
}

type TeamEventPlayoff struct {
	Level              string    `json:"level"`
	Status             string    `json:"status"`
	PlayoffAverage     float64   `json:"playoff_average"`
	Record             WLTRecord `json:"record"`
	CurrentLevelRecord WLTRecord `json:"current_level_record"`
}

// SortOrderStats joins the qual sort-order column names to this team's
// values. Nil when qualification data is absent.
func (s EventTeamStatus) SortOrderStats() map[string]float64 {
	if s.Qual == nil {
		return nil
	}

	stats := make(map[string]float64)
	for i, info := range s.Qual.SortOrderInfo {
		if i < len(s.Qual.Ranking.SortOrders) {
			stats[info.Name] = s.Qual.Ranking.SortOrders[i]
		}
	}
	return stats
}
