package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sensor-inspector/config"
	telegram "sensor-inspector/internal/api"
	"sensor-inspector/internal/container"
	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/infrastructure/storage"
	"sensor-inspector/internal/infrastructure/vision"
)

var (
	cfg     *config.Config
	logger  *zap.Logger
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "inspector",
	Short: "Bad pixel and bad line detection for headerless RAW sensor frames",
	Long: `inspector loads headerless RAW frames, splits Bayer mosaics into
their four parity planes and flags hot/dead pixels or defective rows
and columns against a deviation threshold.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram bot that inspects uploaded RAW documents",
	RunE:  runBot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(inspectCmd, algorithmsCmd, generateCmd, botCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newContainer() *container.Container {
	defaults := entity.Session{
		Width:     cfg.RawWidth,
		Height:    cfg.RawHeight,
		BitDepth:  cfg.RawBitDepth,
		Pattern:   cfg.RawPattern,
		Algorithm: string(entity.KindBadPixel),
	}
	userRepo := storage.NewMemoryUserRepository(defaults)
	registry := vision.NewRegistry(cfg.OverlayLimit)
	return container.New(userRepo, registry, vision.NewRenderer("png"), logger)
}

func runBot(cmd *cobra.Command, args []string) error {
	if cfg.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bot, err := telegram.NewBot(cfg.TelegramToken, newContainer(), logger)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("Bot is running...")
	if err := bot.Run(ctx); err != nil {
		return fmt.Errorf("bot error: %w", err)
	}
	logger.Info("Bot stopped")
	return nil
}
