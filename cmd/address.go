package cmd

import (
	"fmt"

	"github.com/Laincy/kromer2-api/api"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var namesFlag bool

var addressCmd = &cobra.Command{
	Use:   "address <address>",
	Short: "Look up an address",
	Long: `Show the balance, totals and first-seen time of an address.

Examples:
  kromer address kfartoolong          # Show an address
  kromer address kfartoolong --names  # Include the number of owned names`,
	Args: cobra.ExactArgs(1),
	RunE: runAddress,
}

func init() {
	addressCmd.Flags().BoolVar(&namesFlag, "names", false, "Include the number of names owned")
}

func runAddress(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	endpoint := api.GetAddress(args[0])
	if namesFlag {
		endpoint = endpoint.FetchNames(true)
	}

	addr, err := endpoint.Get(cmd.Context(), client)
	if err != nil {
		if api.IsKristError(err, "address_not_found") {
			return fmt.Errorf("address %s does not exist", color.YellowString(args[0]))
		}
		return fmt.Errorf("failed to fetch address: %w", err)
	}

	out := cmd.OutOrStdout()
	if wantJSON(out) {
		return printJSON(out, addr)
	}

	printAddress(out, addr)
	return nil
}
