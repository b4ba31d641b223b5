package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/Laincy/kromer2-api/api"
	"github.com/Laincy/kromer2-api/config"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.1.0"
)

var (
	urlFlag     string
	configFlag  string
	jsonFlag    bool
	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kromer",
	Short: "Query a Kromer2 node from the command line",
	Long: `kromer is a read-only client for Kromer2, a Krist-compatible currency API.

It looks up addresses, lists the richest holders, pages through transaction
history and shows the node's message of the day.

Examples:
  kromer motd                              # Show the message of the day
  kromer address kfartoolong --names       # Look up an address
  kromer rich --limit 10                   # Ten richest addresses
  kromer transactions kfartoolong -l 20    # Recent transactions
  kromer export kfartoolong --pages 5      # Save history to a file
  kromer node https://kromer.example       # Change the default node`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "node URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default ~/.kromer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "print raw JSON")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(motdCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(addressesCmd)
	rootCmd.AddCommand(richCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(nodeCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "kromer v%s\n", version)
	},
}

func configPath() (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if urlFlag != "" {
		cfg.URL = urlFlag
	}
	return cfg, nil
}

// newClient builds an API client from config and flags.
func newClient(cmd *cobra.Command) (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	if verboseFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	client, err := api.NewClient(cfg.URL, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid node url: %w", err)
	}
	client.SetHTTPClient(&http.Client{Timeout: cfg.TimeoutDuration()})

	return client, cfg, nil
}

// wantJSON reports whether output should be JSON rather than formatted text.
func wantJSON(w io.Writer) bool {
	if jsonFlag {
		return true
	}
	f, ok := w.(*os.File)
	return !ok || !term.IsTerminal(int(f.Fd()))
}

func printJSON(w io.Writer, v any) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
