package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"suistream/internal/config"
	"suistream/internal/export"
	"suistream/internal/metrics"
	"suistream/internal/rpc"
	"suistream/internal/stream"
)

func main() {
	root := &cobra.Command{
		Use:          "suistream",
		Short:        "Sui checkpoint stream exporter",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	streamCmd := &cobra.Command{
		Use:   "stream",
		Short: "Stream checkpoints continuously",
		RunE:  runStream,
	}
	addCommonFlags(streamCmd)
	streamCmd.Flags().Int64("start", -1, "start sequence number, -1 means current head")
	streamCmd.Flags().Int64("lag", 0, "checkpoints to stay behind the head")
	streamCmd.Flags().Duration("period", 10*time.Second, "sleep between head polls")
	streamCmd.Flags().String("last-synced-file", "./data/last_synced.json", "last synced sequence file path")
	streamCmd.Flags().Bool("last-synced-enabled", true, "persist sync progress")
	streamCmd.Flags().String("metrics-addr", "", "prometheus listen address, empty disables")
	root.AddCommand(streamCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a single checkpoint",
		RunE:  runExport,
	}
	addCommonFlags(exportCmd)
	exportCmd.Flags().Int64("sequence", -1, "checkpoint sequence number to export")
	root.AddCommand(exportCmd)

	headCmd := &cobra.Command{
		Use:   "head",
		Short: "Print the latest checkpoint sequence number",
		RunE:  runHead,
	}
	addCommonFlags(headCmd)
	root.AddCommand(headCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("rpc", "", "Sui JSON-RPC URL")
	cmd.Flags().Duration("request-timeout", 30*time.Second, "HTTP request timeout")
	cmd.Flags().Int("chunk-size", rpc.MultiGetLimit, "digests per multi-get call")
	cmd.Flags().Int("workers", 1, "parallel multi-get chunks")
	cmd.Flags().Int("max-retries", 5, "maximum retry attempts per chunk")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().StringSlice("output", []string{"console"}, "sinks: console, postgres://dsn, bundle://dir, path.jsonl")
	cmd.Flags().StringSlice("entity-types", nil, "entity types to export (checkpoint,transaction,object,event)")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgFile, err := cmd.Flags().GetString("config")
	if err != nil {
		cfgFile, _ = cmd.Root().PersistentFlags().GetString("config")
	}
	return config.Load(cfgFile, cmd.Flags())
}

func buildAdapter(ctx context.Context, cfg config.Config, logger *zap.Logger) (*stream.Adapter, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("rpc url is required")
	}

	entities, err := stream.ParseEntities(cfg.Entities)
	if err != nil {
		return nil, err
	}

	sink, err := export.CreateSink(ctx, cfg.Outputs)
	if err != nil {
		return nil, err
	}

	caller := metrics.InstrumentCaller(rpc.NewClient(cfg.RPCURL, cfg.RequestTimeout))
	adapter := stream.NewAdapter(stream.AdapterConfig{
		ChunkSize:  cfg.ChunkSize,
		Workers:    cfg.Workers,
		MaxRetries: cfg.MaxRetries,
		Backoff:    cfg.RetryBackoff,
		Entities:   entities,
	}, caller, sink, logger)
	return adapter, nil
}

func runStream(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter, err := buildAdapter(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	state := stream.NewSyncStateStore(cfg.LastSyncedFile, cfg.LastSyncedSave)
	streamer := stream.NewStreamer(stream.StreamerConfig{
		StartSequence: cfg.StartSequence,
		Lag:           cfg.Lag,
		Period:        cfg.Period,
		MaxRetries:    cfg.MaxRetries,
		Backoff:       cfg.RetryBackoff,
	}, adapter, state, logger)

	logger.Info("stream start",
		zap.String("rpc", cfg.RPCURL),
		zap.Int64("start", cfg.StartSequence),
		zap.Int64("lag", cfg.Lag),
		zap.Duration("period", cfg.Period),
		zap.Strings("output", cfg.Outputs),
		zap.Strings("entity_types", cfg.Entities),
	)

	err = streamer.Run(ctx)
	if errors.Is(err, context.Canceled) {
		logger.Info("stream stopped")
		return nil
	}
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sequence, err := cmd.Flags().GetInt64("sequence")
	if err != nil {
		return err
	}
	if sequence < 0 {
		return fmt.Errorf("a non-negative --sequence is required")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter, err := buildAdapter(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if err := adapter.Open(); err != nil {
		return err
	}
	defer adapter.Close()

	return adapter.ExportAll(ctx, sequence, sequence)
}

func runHead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter, err := buildAdapter(ctx, cfg, logger)
	if err != nil {
		return err
	}

	head, err := adapter.CurrentSequenceNumber(ctx)
	if err != nil {
		return err
	}
	fmt.Println(head)
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
