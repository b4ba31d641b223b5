package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Laincy/kromer2-api/api"
	jsoniter "github.com/json-iterator/go"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <address>",
	Short: "Export transaction history to a file",
	Long: `Download several pages of an address's transaction history and save
them to disk.

File formats:
  --format json   Export to JSON (default)
  --format csv    Export to CSV

Examples:
  kromer export kfartoolong                          # 3 pages of 100
  kromer export kfartoolong --pages 10 --limit 500   # Up to 5000 transactions
  kromer export kfartoolong --format csv --out ./exports`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var (
	exportPagesFlag        int
	exportLimitFlag        uint
	exportExcludeMinedFlag bool
	exportFormatFlag       string
	exportDirFlag          string
)

func init() {
	exportCmd.Flags().IntVar(&exportPagesFlag, "pages", 3, "Maximum number of pages to fetch")
	exportCmd.Flags().UintVarP(&exportLimitFlag, "limit", "l", 100, "Transactions per page (1-999)")
	exportCmd.Flags().BoolVar(&exportExcludeMinedFlag, "exclude-mined", false, "Leave out mined transactions")
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "json", "Output format: json or csv")
	exportCmd.Flags().StringVar(&exportDirFlag, "out", "kromer_export", "Directory to write the export to")
}

// ExportData is the document written by the export command
type ExportData struct {
	ExportDate        string            `json:"export_date"`
	Node              string            `json:"node"`
	Address           string            `json:"address"`
	TotalTransactions int               `json:"total_transactions"`
	Transactions      []api.Transaction `json:"transactions"`
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportPagesFlag < 1 {
		return fmt.Errorf("pages must be at least 1")
	}
	if exportLimitFlag < 1 || exportLimitFlag >= api.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", api.MaxLimit-1)
	}
	if exportFormatFlag != "json" && exportFormatFlag != "csv" {
		return fmt.Errorf("unsupported format: %s. Use 'json' or 'csv'", exportFormatFlag)
	}

	addr := args[0]
	if err := checkExportAddress(addr); err != nil {
		return err
	}

	client, _, err := newClient(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "📊 Exporting transactions of %s...\n", addr)

	bar := progressbar.NewOptions(exportPagesFlag,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription("[cyan][1/2][reset] Fetching pages..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	txs, err := fetchHistory(cmd, client, addr, bar)
	if err != nil {
		return fmt.Errorf("failed to collect transactions: %w", err)
	}

	exportData := &ExportData{
		ExportDate:        time.Now().UTC().Format(time.RFC3339),
		Node:              client.BaseURL(),
		Address:           addr,
		TotalTransactions: len(txs),
		Transactions:      txs,
	}

	bar.Describe("[cyan][2/2][reset] Writing export file...")
	if err := os.MkdirAll(exportDirFlag, 0700); err != nil {
		return fmt.Errorf("failed to prepare export directory: %w", err)
	}

	filename := filepath.Join(exportDirFlag,
		fmt.Sprintf("kromer_%s_%s.%s", addr, time.Now().Format("20060102_150405"), exportFormatFlag))

	switch exportFormatFlag {
	case "csv":
		err = writeCSVFile(filename, exportData)
	default:
		err = writeJSONFile(filename, exportData)
	}
	if err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	_ = bar.Finish()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "📁 Export completed successfully!")
	fmt.Fprintf(out, "📍 File saved to: %s\n", filename)
	fmt.Fprintf(out, "   Transactions: %d\n", exportData.TotalTransactions)

	return nil
}

// checkExportAddress rejects addresses that cannot be used as part of the
// export file name.
func checkExportAddress(addr string) error {
	if addr == "" || addr == "." || addr == ".." || strings.ContainsAny(addr, `/\`) {
		return fmt.Errorf("invalid address %q: not usable in a file name", addr)
	}
	return nil
}

// fetchHistory walks the history page by page until a short page is returned
// or the page budget runs out.
func fetchHistory(cmd *cobra.Command, client *api.Client, addr string, bar *progressbar.ProgressBar) ([]api.Transaction, error) {
	endpoint := api.AddressTransactions(addr).
		Limit(exportLimitFlag).
		ExcludeMined(exportExcludeMinedFlag)
	limit := endpoint.Page().Limit()

	var all []api.Transaction
	for page := 0; page < exportPagesFlag; page++ {
		txs, err := endpoint.Offset(uint(page) * limit).Get(cmd.Context(), client)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page+1, err)
		}
		all = append(all, txs...)
		_ = bar.Add(1)

		if uint(len(txs)) < limit {
			break
		}
	}

	if all == nil {
		all = []api.Transaction{}
	}
	return all, nil
}

func writeJSONFile(filename string, exportData *ExportData) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(exportData, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0600)
}

func writeCSVFile(filename string, exportData *ExportData) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write([]string{"id", "type", "from", "to", "value", "time", "name", "metadata"}); err != nil {
		return err
	}

	for _, tx := range exportData.Transactions {
		if err := writer.Write([]string{
			strconv.FormatInt(tx.ID, 10),
			string(tx.Type),
			deref(tx.From),
			tx.To,
			tx.Value.String(),
			tx.Time.Format(time.RFC3339),
			deref(tx.Name),
			deref(tx.Metadata),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
