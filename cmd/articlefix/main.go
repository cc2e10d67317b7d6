// cmd/articlefix/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"articlefix/internal/batch"
	"articlefix/internal/config"
	"articlefix/internal/console"
	"articlefix/internal/discover"
	"articlefix/internal/logging"
	"articlefix/internal/rewrite"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "articlefix",
	Short: "Wrap every article page in an article-container",
	Long: `articlefix rewrites every page matching ` + discover.ArticlePattern + `
so that the main container sits inside an extra article-container div.
Each file is copied to <file>` + rewrite.BackupSuffix + ` before it is rewritten.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFix,
}

func init() {
	rootCmd.Flags().Bool("diff", false, "print a diff of every changed file")
	rootCmd.Flags().String("log-level", "", "diagnostic log level on stderr (debug, info, warn, error)")
	rootCmd.Flags().String("config", config.DefaultPath, "path to an optional JSON config file")
}

func runFix(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("diff") {
		cfg.ShowDiff, _ = cmd.Flags().GetBool("diff")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	fsys := afero.NewOsFs()
	runner := batch.NewRunner(
		fsys,
		rewrite.NewRewriter(fsys, rewrite.ArticleRules, logger),
		console.New(cmd.OutOrStdout(), !color.NoColor),
		batch.Options{ShowDiff: cfg.ShowDiff},
		logger,
	)

	// Per-file failures are only reported; they never change the exit status.
	if _, err := runner.Run(cmd.Context()); err != nil {
		logger.Error("run aborted", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
