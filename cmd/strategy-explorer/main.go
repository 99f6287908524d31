package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/solardome/strategy-explorer/internal/config"
	"github.com/solardome/strategy-explorer/internal/dataset"
	"github.com/solardome/strategy-explorer/internal/explorer"
	"github.com/solardome/strategy-explorer/internal/server"
)

var (
	verbose bool
	logger  *zap.Logger

	reportCfg explorer.Config
)

var rootCmd = &cobra.Command{
	Use:   "strategy-explorer",
	Short: "Explore data strategies and plan your own journey",
	Long: `strategy-explorer compares where your organisation sits on the ten
strategic tensions against where it wants to be, checks the targets against
your measured data maturity, and produces a ranked journey report with
seeded actions. It can also browse a CSV corpus of published strategies.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run a gap analysis and write the journey artifacts",
	RunE: func(cmd *cobra.Command, args []string) error {
		journey, err := explorer.Run(reportCfg)
		if err != nil {
			return err
		}
		fmt.Printf("journey %s: level %s (avg %.2f), %d conflicts, %d actions -> %s\n",
			journey.RunID,
			journey.Maturity.Level,
			journey.Maturity.Average,
			journey.Summary.Conflicts,
			len(journey.Actions),
			reportCfg.OutJSONPath)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dataset explorer and journey API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		cfg.Verbose = cfg.Verbose || verbose

		srv, err := server.New(cfg, logger)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [dataset.csv]",
	Short: "Validate a strategy dataset CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		issues := dataset.ValidateRecords(records)
		for _, issue := range issues {
			fmt.Println(issue.String())
		}
		if len(issues) > 0 {
			return fmt.Errorf("%d validation issues in %s", len(issues), args[0])
		}
		fmt.Printf("dataset OK: %d rows\n", len(records))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	reportCmd.Flags().StringVar(&reportCfg.CurrentPath, "current", "", "current profile YAML/JSON (defaults to all 50)")
	reportCmd.Flags().StringVar(&reportCfg.TargetPath, "target", "", "target profile YAML/JSON (defaults to all 50)")
	reportCmd.Flags().StringVar(&reportCfg.MaturityPath, "maturity", "", "maturity profile YAML/JSON (defaults to all 3)")
	reportCmd.Flags().StringVar(&reportCfg.DatasetPath, "dataset", "", "strategy dataset CSV for context stats")
	reportCmd.Flags().StringVar(&reportCfg.OutJSONPath, "out-json", "journey.json", "journey report JSON path")
	reportCmd.Flags().StringVar(&reportCfg.OutHTMLPath, "out-html", "", "journey report HTML path (defaults next to the JSON)")
	reportCmd.Flags().StringVar(&reportCfg.OutActionsCSVPath, "out-actions", "", "seeded actions CSV path")
	reportCmd.Flags().StringVar(&reportCfg.OutMaturityCSVPath, "out-maturity", "", "maturity snapshot CSV path")
	reportCmd.Flags().StringVar(&reportCfg.ChartDir, "chart-dir", "", "directory for PNG charts")
	reportCmd.Flags().IntVar(&reportCfg.TopN, "top-n", explorer.DefaultTopN, "number of actions to seed")
	reportCmd.Flags().BoolVar(&reportCfg.WriteHTML, "html", true, "write the HTML report")
	reportCmd.Flags().BoolVar(&reportCfg.WriteCharts, "charts", false, "write PNG charts (requires --chart-dir)")

	rootCmd.AddCommand(reportCmd, serveCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
