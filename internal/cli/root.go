package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	supadata "github.com/supadata-ai/supadata-go"
	"github.com/supadata-ai/supadata-go/internal/config"
	"github.com/supadata-ai/supadata-go/internal/metrics"
)

var (
	cfgPath string
	apiKey  string
	baseURL string
	output  string
	verbose bool
	quiet   bool
	stats   bool

	// From the config file; flags win over these.
	outputCfg config.OutputConfig
)

var rootCmd = &cobra.Command{
	Use:   "supadata",
	Short: "Fetch YouTube transcripts, scrape pages and run crawls via the Supadata API",
	Long: `Supadata fetches YouTube transcripts and metadata, scrapes web pages,
maps sites and manages crawl jobs through the Supadata API.

The API key is taken from --api-key, the SUPADATA_API_KEY environment
variable, or the apiKey field of the config file, in that order.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if stats {
			fmt.Fprint(os.Stderr, metrics.Export())
		}
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// commandContext is cancelled on SIGINT/SIGTERM so an interrupted
// command aborts its in-flight request.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// newClient assembles a client from flags, environment and config
// file, in that order of precedence.
func newClient() (*supadata.Client, error) {
	path := cfgPath
	explicit := path != ""
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	outputCfg = cfg.Output

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured: set --api-key, SUPADATA_API_KEY, or apiKey in %s", path)
	}

	opts := []supadata.Option{supadata.WithLogger(slog.Default())}
	if cfg.BaseURL != "" {
		opts = append(opts, supadata.WithBaseURL(cfg.BaseURL))
	}
	return supadata.New(cfg.APIKey, opts...)
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Supadata API key")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL override")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format: json or text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&stats, "stats", false, "print request metrics to stderr on exit")
}
