package commands

import (
	"fmt"

	"bluealliance-client/lib/tba"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	teamsYear int
	teamsPage int
	teamsKeys bool
)

func init() {
	teamsCmd.Flags().IntVar(&teamsYear, "year", 0, "Limit to teams that played this season.")
	teamsCmd.Flags().IntVar(&teamsPage, "page", -1, "Fetch a single 500-team page (0-based).")
	teamsCmd.Flags().BoolVar(&teamsKeys, "keys", false, "Print only team keys.")
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams [--year <year>] [--page <n>] [--keys]",
	Short: "List teams, one page or every page.",
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient()
		if err != nil {
			fatal("failed to initialize client", err)
		}
		defer client.Close()

		req := tba.TeamsRequest{Year: teamsYear}
		if teamsPage >= 0 {
			page := teamsPage
			req.Page = &page
		}

		if teamsKeys {
			keys, err := client.TeamKeys(cmd.Context(), req)
			if err != nil {
				fatal("failed to fetch team keys", err)
			}
			for _, key := range keys {
				fmt.Println(key)
			}
			return
		}

		teams, err := client.Teams(cmd.Context(), req)
		if err != nil {
			fatal("failed to fetch teams", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"key", "nickname", "city", "country", "rookie year"})
		for _, team := range teams {
			t.AppendRow(table.Row{team.Key, team.Nickname, team.City, team.Country, team.RookieYear})
		}
		t.Render()
	},
}
