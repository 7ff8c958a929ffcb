package commands

import (
	"fmt"

	"bluealliance-client/lib/tba"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var teamEventsYear int

func init() {
	teamCmd.Flags().IntVar(&teamEventsYear, "events", 0, "Also list the team's events for this season.")
	rootCmd.AddCommand(teamCmd)

	rootCmd.AddCommand(matchesCmd)
}

var teamCmd = &cobra.Command{
	Use:   "team <key or number>",
	Short: "Show one team's record.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("failed to initialize client", err)
		}
		defer client.Close()

		team, err := client.Team(cmd.Context(), args[0])
		if err != nil {
			fatal("failed to fetch team", err)
		}

		t := newTable()
		t.AppendRow(table.Row{"key", team.Key})
		t.AppendRow(table.Row{"nickname", team.Nickname})
		t.AppendRow(table.Row{"school", team.SchoolName})
		t.AppendRow(table.Row{"location", fmt.Sprintf("%s, %s, %s", team.City, team.StateProv, team.Country)})
		t.AppendRow(table.Row{"rookie year", team.RookieYear})
		t.AppendRow(table.Row{"website", team.Website})
		t.Render()

		if teamEventsYear == 0 {
			return
		}

		events, err := team.Events(cmd.Context(), client, teamEventsYear)
		if err != nil {
			fatal("failed to fetch team events", err)
		}
		et := newTable()
		et.AppendHeader(table.Row{"key", "name", "start"})
		for _, event := range events {
			et.AppendRow(table.Row{event.Key, event.Name, event.StartDate})
		}
		et.Render()
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches <event key>",
	Short: "List the matches of an event.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("failed to initialize client", err)
		}
		defer client.Close()

		event, err := tba.NewEventKey(args[0])
		if err != nil {
			fatal("invalid event key", err)
		}

		matches, err := event.Matches(cmd.Context(), client)
		if err != nil {
			fatal("failed to fetch matches", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"key", "red", "blue", "winner"})
		for _, m := range matches {
			t.AppendRow(table.Row{
				m.Key,
				m.Alliances.Red.Score,
				m.Alliances.Blue.Score,
				m.WinningAlliance,
			})
		}
		t.Render()
	},
}
