package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/willow-ren/larkcard/internal/card"
	"github.com/willow-ren/larkcard/internal/config"
	"github.com/willow-ren/larkcard/internal/deliver"
	"github.com/willow-ren/larkcard/internal/deliver/multi"
	"github.com/willow-ren/larkcard/internal/deliver/stdout"
	"github.com/willow-ren/larkcard/internal/deliver/webhook"
	"github.com/willow-ren/larkcard/internal/input"
	"github.com/willow-ren/larkcard/internal/logging"
	"github.com/willow-ren/larkcard/internal/pipeline"
	"github.com/willow-ren/larkcard/internal/render"
)

const (
	exitFailure = 1 // input format error or delivery failure
	exitConfig  = 2 // configuration error, detected before any rendering
)

var (
	cfgFile     string
	title       string
	headerText  string
	color       string
	narrow      bool
	compact     bool
	file        string
	linkFields  []string
	linkBaseURL string
	linkLabel   string
	dryRun      bool
	echo        bool
	timeout     time.Duration
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "larkcard",
	Short: "Send a JSON record list to a chat webhook as an interactive card",
	Long: `larkcard reads a JSON array of records from stdin or a file, renders each
record into a markdown block (hyperlinking link fields, mapping status values
to glyphs), and posts the assembled card to the bot webhook named by
LARKCARD_WEBHOOK_URL.

Example:
  echo '[{"name":"GitHub","url":"https://github.com"}]' | larkcard -t "Link list"`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	defaults := config.Default()
	fl := rootCmd.Flags()

	fl.StringVar(&cfgFile, "config", "", "YAML config file")
	fl.StringVarP(&title, "title", "t", defaults.Title, "card title")
	fl.StringVarP(&headerText, "header-text", "H", defaults.HeaderText, "card header text (markdown)")
	fl.StringVarP(&color, "color", "c", defaults.Theme, "card color theme")
	fl.BoolVar(&narrow, "narrow", false, "disable wide-screen mode")
	fl.BoolVar(&compact, "compact", false, "single-line blocks joined with \" | \"")
	fl.StringVarP(&file, "file", "f", "", "read JSON from file instead of stdin")
	fl.StringSliceVar(&linkFields, "link-fields", defaults.LinkFields, "field names rendered as hyperlinks")
	fl.StringVar(&linkBaseURL, "link-base-url", "", "base URL for completing relative link values")
	fl.StringVar(&linkLabel, "link-label", defaults.LinkLabel, `hyperlink label mode: "label" or "url"`)
	fl.BoolVar(&dryRun, "dry-run", false, "print the payload to stdout instead of sending")
	fl.BoolVar(&echo, "echo", false, "print the payload to stdout in addition to sending")
	fl.DurationVar(&timeout, "timeout", time.Duration(defaults.Timeout), "delivery timeout")
	fl.StringVar(&logLevel, "log-level", defaults.LogLevel, "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	logger, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(!dryRun); err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		return err
	}

	records, err := input.Read(file)
	if err != nil {
		logger.Error("failed to read input", zap.Error(err))
		return err
	}
	logger.Debug("input decoded", zap.Int("records", len(records)))

	p := pipeline.New(render.New(cfg.Rules()), cfg.Layout(), buildDeliverer(cfg))
	if err := p.Run(context.Background(), records); err != nil {
		logger.Error("delivery failed", zap.Error(err))
		return err
	}

	logger.Info("card delivered",
		zap.Int("records", len(records)),
		zap.String("theme", cfg.Theme),
		zap.Bool("dry_run", dryRun))
	return nil
}

// applyFlags layers explicitly set flags over the loaded config, so a YAML
// value survives unless the flag was given on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("title") {
		cfg.Title = title
	}
	if fl.Changed("header-text") {
		cfg.HeaderText = headerText
	}
	if fl.Changed("color") {
		cfg.Theme = color
	}
	if fl.Changed("narrow") {
		cfg.Narrow = narrow
	}
	if fl.Changed("compact") {
		cfg.Compact = compact
	}
	if fl.Changed("link-fields") {
		cfg.LinkFields = linkFields
	}
	if fl.Changed("link-base-url") {
		cfg.LinkBaseURL = linkBaseURL
	}
	if fl.Changed("link-label") {
		cfg.LinkLabel = linkLabel
	}
	if fl.Changed("timeout") {
		cfg.Timeout = config.Duration(timeout)
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

// buildDeliverer picks the delivery target: stdout for dry runs, the webhook
// for real sends, and a fan-out of both when echoing.
func buildDeliverer(cfg config.Config) deliver.Deliverer {
	if dryRun {
		return stdout.New(nil)
	}
	hook := webhook.New(cfg.WebhookURL, webhook.WithTimeout(time.Duration(cfg.Timeout)))
	if echo {
		return multi.New(stdout.New(nil), hook)
	}
	return hook
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, card.ErrUnknownTheme) ||
			errors.Is(err, config.ErrMissingWebhook) ||
			errors.Is(err, config.ErrBadLinkLabel) {
			os.Exit(exitConfig)
		}
		os.Exit(exitFailure)
	}
}
