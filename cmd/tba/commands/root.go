package commands

import (
	"context"
	"fmt"
	"os"

	"bluealliance-client/lib/configutil"
	"bluealliance-client/lib/tba"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key"`
}

var rootCmd = &cobra.Command{
	Use:   "tba",
	Short: "tba queries The Blue Alliance API for FRC teams, events and matches.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds a client from bluealliance.json5, falling back to the
// TBA_API_KEY/API_KEY environment variables when no config exists.
func newClient() (*tba.Client, error) {
	cfg, err := configutil.ReadRecursively[Config]("bluealliance.json5")
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return tba.NewClient(tba.ClientOptions{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
	})
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
