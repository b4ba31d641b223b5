package cmd

import (
	"fmt"
	"time"

	"github.com/Laincy/kromer2-api/api"
	"github.com/spf13/cobra"
)

var (
	txLimitFlag      uint
	txOffsetFlag     uint
	excludeMinedFlag bool
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions <address>",
	Aliases: []string{"txs"},
	Short:   "Show transaction history of an address",
	Long: `Show the transaction history of an address, newest first.

Examples:
  kromer transactions kfartoolong                   # Latest 50 transactions
  kromer transactions kfartoolong -l 10 -o 10       # Second page of 10
  kromer transactions kfartoolong --exclude-mined   # Skip mined blocks`,
	Args: cobra.ExactArgs(1),
	RunE: runTransactions,
}

func init() {
	transactionsCmd.Flags().UintVarP(&txLimitFlag, "limit", "l", api.DefaultLimit, "Transactions per page (max 999)")
	transactionsCmd.Flags().UintVarP(&txOffsetFlag, "offset", "o", 0, "Number of transactions to skip")
	transactionsCmd.Flags().BoolVar(&excludeMinedFlag, "exclude-mined", false, "Leave out mined transactions")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	addr := args[0]
	start := time.Now()

	txs, err := api.AddressTransactions(addr).
		Limit(txLimitFlag).
		Offset(txOffsetFlag).
		ExcludeMined(excludeMinedFlag).
		Get(cmd.Context(), client)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	out := cmd.OutOrStdout()
	if wantJSON(out) {
		return printJSON(out, txs)
	}

	fmt.Fprintf(out, "📜 Transaction history of %s (offset %d):\n", addr, txOffsetFlag)
	fmt.Fprintln(out)
	printTransactions(out, addr, txs)
	elapsedLine(out, start)
	return nil
}
