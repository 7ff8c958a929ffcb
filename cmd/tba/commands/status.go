package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show API health and season metadata.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("failed to initialize client", err)
		}
		defer client.Close()

		status, err := client.Status(cmd.Context())
		if err != nil {
			fatal("failed to fetch status", err)
		}

		t := newTable()
		t.AppendRow(table.Row{"current season", status.CurrentSeason})
		t.AppendRow(table.Row{"max season", status.MaxSeason})
		t.AppendRow(table.Row{"datafeed down", status.IsDatafeedDown})
		t.AppendRow(table.Row{"down events", len(status.DownEvents)})
		t.Render()
	},
}
