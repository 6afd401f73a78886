// filinglens — SEC EDGAR filing retrieval and extraction pipeline.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seenimoa/filinglens/api"
	"github.com/seenimoa/filinglens/internal/analysis/metrics"
	"github.com/seenimoa/filinglens/internal/config"
	"github.com/seenimoa/filinglens/internal/datasource"
	"github.com/seenimoa/filinglens/internal/edgar"
	"github.com/seenimoa/filinglens/internal/export"
	"github.com/seenimoa/filinglens/internal/logging"
	"github.com/seenimoa/filinglens/pkg/models"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	cfg *config.Config
	log *zap.Logger
)

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "filinglens",
	Short: "filinglens — SEC EDGAR filing analyzer",
	Long: `filinglens retrieves corporate filings from SEC EDGAR for a stock
ticker, filters them by form type and recency, and extracts approximate
financial metrics and sentiment signals from the filing text.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		log, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(companyCmd)
	rootCmd.AddCommand(filingsCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(pricesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// newService builds the EDGAR pipeline service from the loaded config.
func newService() *edgar.Service {
	return edgar.NewService(cfg.Edgar)
}

// filingFlags reads and validates the shared --form / --days flags.
func filingFlags(cmd *cobra.Command) (string, int, error) {
	form, _ := cmd.Flags().GetString("form")
	days, _ := cmd.Flags().GetInt("days")
	if !models.IsSupportedFormType(form) {
		return "", 0, fmt.Errorf("unsupported form type %q (supported: 10-K, 10-Q, 8-K)", form)
	}
	if days < models.MinWindowDays || days > models.MaxWindowDays {
		return "", 0, fmt.Errorf("days must be between %d and %d", models.MinWindowDays, models.MaxWindowDays)
	}
	return form, days, nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("filinglens %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Company Command ---

var companyCmd = &cobra.Command{
	Use:   "company [ticker]",
	Short: "Resolve a ticker to its CIK and company name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		company, err := svc.ResolveCompany(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s — %s (CIK %s)\n", company.Ticker, company.Name, company.CIK)
		return nil
	},
}

// --- Filings Command ---

var filingsCmd = &cobra.Command{
	Use:   "filings [ticker]",
	Short: "List recent filings for a ticker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, days, err := filingFlags(cmd)
		if err != nil {
			return err
		}

		svc := newService()
		company, filings, err := svc.Filings(cmd.Context(), args[0], form, days, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("📄 %s — %s\n", company.Ticker, company.Name)
		if len(filings) == 0 {
			fmt.Printf("No %s filings in the past %d days.\n", form, days)
			return nil
		}
		for _, f := range filings {
			fmt.Printf("  %s  %-5s  %s\n", f.Date.Format("2006-01-02"), f.FormType, f.DocumentURL)
		}
		return nil
	},
}

func init() {
	filingsCmd.Flags().String("form", "10-K", "form type (10-K, 10-Q, 8-K)")
	filingsCmd.Flags().Int("days", 90, "trailing window in days (30-365)")
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [ticker]",
	Short: "Extract metrics and sentiment from the most recent matching filing",
	Long: `Extract approximate financial metrics and a sentiment score from a
filing document. Figures are regex-scraped from the rendered text and are
best-effort, not audited data.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		extractor := metrics.NewExtractor(svc.Client())

		documentURL, _ := cmd.Flags().GetString("url")
		if documentURL == "" {
			if len(args) == 0 {
				return fmt.Errorf("provide a ticker or --url")
			}
			form, days, err := filingFlags(cmd)
			if err != nil {
				return err
			}
			company, filings, err := svc.Filings(cmd.Context(), args[0], form, days, time.Now())
			if err != nil {
				return err
			}
			if len(filings) == 0 {
				fmt.Printf("No %s filings for %s in the past %d days.\n", form, company.Ticker, days)
				return nil
			}
			documentURL = filings[0].DocumentURL
			fmt.Printf("🔍 Analyzing %s %s filed %s\n", company.Ticker, filings[0].FormType, filings[0].Date.Format("2006-01-02"))
		}

		analysis, err := extractor.Extract(cmd.Context(), documentURL)
		if err != nil {
			return err
		}

		fmt.Printf("Document: %s (%d chars of text)\n\n", analysis.DocumentURL, analysis.TextLength)
		fmt.Println("Metrics (mean of matched occurrences; magnitude suffixes not applied):")
		for _, label := range models.MetricLabels {
			if mean, ok := analysis.Mean(label); ok {
				fmt.Printf("  %-17s %s  (%d occurrence(s))\n", label+":", mean.StringFixed(2), len(analysis.Metrics[label]))
			} else {
				fmt.Printf("  %-17s not found\n", label+":")
			}
		}
		fmt.Printf("\nSentiment: polarity %+.3f, subjectivity %.3f\n",
			analysis.Sentiment.Polarity, analysis.Sentiment.Subjectivity)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().String("form", "10-K", "form type (10-K, 10-Q, 8-K)")
	analyzeCmd.Flags().Int("days", 365, "trailing window in days (30-365)")
	analyzeCmd.Flags().String("url", "", "analyze a specific filing document URL")
}

// --- Export Command ---

var exportCmd = &cobra.Command{
	Use:   "export [ticker]",
	Short: "Export filtered filings to CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, days, err := filingFlags(cmd)
		if err != nil {
			return err
		}

		svc := newService()
		company, filings, err := svc.Filings(cmd.Context(), args[0], form, days, time.Now())
		if err != nil {
			return err
		}

		data, err := export.FilingsCSV(filings)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = company.Ticker + "_filings.csv"
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("📥 Wrote %d filing(s) to %s\n", len(filings), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("form", "10-K", "form type (10-K, 10-Q, 8-K)")
	exportCmd.Flags().Int("days", 365, "trailing window in days (30-365)")
	exportCmd.Flags().String("out", "", "output file (default: TICKER_filings.csv)")
}

// --- Feed Command ---

var feedCmd = &cobra.Command{
	Use:   "feed [ticker]",
	Short: "Show the latest filings from the company's EDGAR feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, _ := cmd.Flags().GetString("form")
		limit, _ := cmd.Flags().GetInt("limit")
		if form != "" && !models.IsSupportedFormType(form) {
			return fmt.Errorf("unsupported form type %q", form)
		}

		svc := newService()
		company, err := svc.ResolveCompany(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		entries, err := svc.LatestFilingsFeed(cmd.Context(), company.CIK, form, limit)
		if err != nil {
			return err
		}

		fmt.Printf("📡 %s — latest filings feed\n", company.Ticker)
		for _, e := range entries {
			fmt.Printf("  %s  %s\n", e.Updated.Format("2006-01-02"), e.Title)
		}
		return nil
	},
}

func init() {
	feedCmd.Flags().String("form", "", "restrict feed to one form type")
	feedCmd.Flags().Int("limit", 20, "max feed entries")
}

// --- Prices Command ---

var pricesCmd = &cobra.Command{
	Use:   "prices [ticker]",
	Short: "Show daily closing prices over the lookback window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")

		source := datasource.NewYahooSource(cfg.Prices)
		points, err := source.DailyCloses(cmd.Context(), args[0], days)
		if err != nil {
			return err
		}
		for _, p := range points {
			fmt.Printf("  %s  %10.2f\n", p.Date.Format("2006-01-02"), p.Close)
		}
		return nil
	},
}

func init() {
	pricesCmd.Flags().Int("days", 90, "trailing window in days")
}

// --- Serve Command ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := api.NewServer(cfg, log)
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		return srv.ListenAndServe(addr)
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and EDGAR connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  filinglens — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version:     %s (%s)\n", version, commit)
		fmt.Printf("  User-Agent:  %s\n", cfg.Edgar.UserAgent)
		fmt.Printf("  Cache TTL:   %s\n", cfg.Edgar.CacheTTL())
		fmt.Printf("  Request gap: %s\n", cfg.Edgar.RequestGap())
		fmt.Printf("  API Server:  %s:%d\n", cfg.API.Host, cfg.API.Port)

		svc := newService()
		if err := svc.Ping(cmd.Context()); err != nil {
			fmt.Printf("  EDGAR:       ❌ unreachable (%v)\n", err)
		} else {
			fmt.Println("  EDGAR:       ✅ reachable")
		}
		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}
