package cmd

import (
	"fmt"

	"github.com/Laincy/kromer2-api/api"
	"github.com/spf13/cobra"
)

var motdCmd = &cobra.Command{
	Use:   "motd",
	Short: "Show the node's message of the day",
	Long: `Show the message of the day along with the node's public URLs,
currency and server package.

Example:
  kromer motd
  kromer motd --json`,
	Args: cobra.NoArgs,
	RunE: runMotd,
}

func runMotd(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	motd, err := api.GetMotd().Get(cmd.Context(), client)
	if err != nil {
		return fmt.Errorf("failed to fetch motd: %w", err)
	}

	out := cmd.OutOrStdout()
	if wantJSON(out) {
		return printJSON(out, motd)
	}

	printMotd(out, motd, client.BaseURL())
	return nil
}
