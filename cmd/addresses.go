package cmd

import (
	"fmt"
	"time"

	"github.com/Laincy/kromer2-api/api"
	"github.com/spf13/cobra"
)

var (
	listLimitFlag  uint
	listOffsetFlag uint
)

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "List known addresses",
	Long: `List every address known to the node, oldest first.

Limits of 1000 or more are ignored and the default of 50 is used.

Examples:
  kromer addresses                      # First 50 addresses
  kromer addresses --limit 20 --offset 40`,
	Args: cobra.NoArgs,
	RunE: runAddresses,
}

var richCmd = &cobra.Command{
	Use:   "rich",
	Short: "List the richest addresses",
	Long: `List addresses ordered by balance, richest first.

Examples:
  kromer rich              # Top 50
  kromer rich --limit 10   # Top 10`,
	Args: cobra.NoArgs,
	RunE: runRich,
}

func init() {
	for _, c := range []*cobra.Command{addressesCmd, richCmd} {
		c.Flags().UintVarP(&listLimitFlag, "limit", "l", api.DefaultLimit, "Addresses per page (max 999)")
		c.Flags().UintVarP(&listOffsetFlag, "offset", "o", 0, "Number of addresses to skip")
	}
}

func runAddresses(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	addrs, err := api.ListAddresses().
		Limit(listLimitFlag).
		Offset(listOffsetFlag).
		Get(cmd.Context(), client)
	if err != nil {
		return fmt.Errorf("failed to list addresses: %w", err)
	}

	return showAddressList(cmd, "📒 Addresses", addrs, start)
}

func runRich(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	addrs, err := api.ListRichest().
		Limit(listLimitFlag).
		Offset(listOffsetFlag).
		Get(cmd.Context(), client)
	if err != nil {
		return fmt.Errorf("failed to list richest addresses: %w", err)
	}

	return showAddressList(cmd, "🏆 Richest addresses", addrs, start)
}

func showAddressList(cmd *cobra.Command, title string, addrs []api.Address, start time.Time) error {
	out := cmd.OutOrStdout()
	if wantJSON(out) {
		return printJSON(out, addrs)
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)
	printAddressTable(out, addrs, listOffsetFlag)
	elapsedLine(out, start)
	return nil
}
