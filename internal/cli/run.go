package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ppiankov/triage/internal/cache"
	"github.com/ppiankov/triage/internal/console"
	"github.com/ppiankov/triage/internal/kb"
	"github.com/ppiankov/triage/internal/model"
	"github.com/ppiankov/triage/internal/session"
	"github.com/ppiankov/triage/internal/store"
)

var (
	dumpPath string
	noColor  bool
	noCache  bool
)

func init() {
	rootCmd.Flags().StringVar(&dumpPath, "dump", "", `write the knowledge base as YAML when the session ends ("-" for stdout)`)
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored prompts")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable candidate memoization")
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags override config
	if cmd.Flags().Changed("dump") {
		cfg.Session.DumpPath = dumpPath
	}
	if noColor {
		cfg.Console.Color = false
	}
	if noCache {
		cfg.Session.CacheEnabled = false
	}

	logger, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return runWith(context.Background(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// runWith runs one session over in/out and hands the knowledge base to the
// configured dump target when input ends
func runWith(ctx context.Context, cfg model.Config, in io.Reader, out, errOut io.Writer, logger *zap.Logger) error {
	storeOpts := []store.Option{store.WithLogger(logger)}
	if cfg.Session.CacheEnabled {
		memo := cache.NewMemoryCache(cfg.Session.CacheTTL, 10*time.Minute)
		storeOpts = append(storeOpts, store.WithCache(memo, cfg.Session.CacheTTL))
	}
	k := kb.New(storeOpts...)

	term := console.New(in, out,
		console.WithDeclineTokens(cfg.Console.DeclineTokens...),
		console.WithColor(cfg.Console.Color),
	)
	s := session.New(k, term, term, session.WithLogger(logger))

	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	stats := k.Stats()
	status := color.New(color.FgGreen)
	if !cfg.Console.Color {
		status.DisableColor()
	}
	fmt.Fprintln(errOut)
	_, _ = status.Fprintf(errOut, "✓ Session ended: %d questions, %d outcomes, %d cases\n",
		stats.Questions, stats.Outcomes, stats.Cases)

	if cfg.Session.DumpPath == "" {
		return nil
	}

	target := kb.NewYAMLFile(cfg.Session.DumpPath)
	target.Stdout = out
	if err := target.Save(k.Snapshot()); err != nil {
		return fmt.Errorf("dump knowledge base: %w", err)
	}
	if cfg.Session.DumpPath != "-" {
		_, _ = status.Fprintf(errOut, "✓ Knowledge base written to %s\n", cfg.Session.DumpPath)
	}
	return nil
}
