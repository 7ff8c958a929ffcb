package commands

import (
	"strconv"

	"bluealliance-client/lib/tba"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var eventsYear int

func init() {
	eventsCmd.Flags().IntVar(&eventsYear, "year", 0, "Season to list events for.")
	eventsCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(eventsCmd)

	rootCmd.AddCommand(districtsCmd)
}

var eventsCmd = &cobra.Command{
	Use:   "events --year <year>",
	Short: "List the events of a season.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("failed to initialize client", err)
		}
		defer client.Close()

		events, err := client.Events(cmd.Context(), tba.EventsRequest{Year: eventsYear})
		if err != nil {
			fatal("failed to fetch events", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"key", "name", "type", "city", "start"})
		for _, event := range events {
			t.AppendRow(table.Row{event.Key, event.Name, event.EventTypeString, event.City, event.StartDate})
		}
		t.Render()
	},
}

var districtsCmd = &cobra.Command{
	Use:   "districts <year>",
	Short: "List the districts active in a season.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("invalid year", err)
		}

		client, err := newClient()
		if err != nil {
			fatal("failed to initialize client", err)
		}
		defer client.Close()

		districts, err := client.Districts(cmd.Context(), year)
		if err != nil {
			fatal("failed to fetch districts", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"key", "abbreviation", "name"})
		for _, d := range districts {
			t.AppendRow(table.Row{d.Key, d.Abbreviation, d.DisplayName})
		}
		t.Render()
	},
}
