// Command server exposes the arabdict conjugator as a JSON REST API.
//
// Endpoints:
//
//	GET /api/conjugate?root=<root>&stem=<n>[&past=a&present=u][&tense=…&voice=…&mood=…&person=…&gender=…&numerus=…][&dialect=msa]
//	GET /api/table?root=<root>&stem=<n>[&past=a&present=u][&dialect=msa]
//	GET /api/participle?root=<root>&stem=<n>[&voice=passive]
//	GET /api/verbal-noun?root=<root>&stem=<n>
//	GET /api/analyze?form=<word>[&dialect=msa]
//	GET /api/stem1-contexts?root=<root>
//	GET /api/dialects
//
// The configuration file is named by --config or $ARABDICT_CONFIG and
// defaults to ./arabdict.yaml; --print-env lists the variables that
// override it.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arabdict/arabdict"
	"github.com/arabdict/arabdict/internal/config"
	"github.com/arabdict/arabdict/internal/tablecache"
)

// newLogger builds a production zap logger from the log section.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc.Level = level
	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zc.Build()
}

// newTableCache returns the table cache, backed by redis when enabled.
func newTableCache(ctx context.Context, cfg config.CacheConfig, conj *arabdict.Conjugator, log *zap.Logger) (*tablecache.Cache, func(), error) {
	log = log.Named("tablecache")
	if !cfg.Enabled {
		return tablecache.New(conj, nil, 0, cfg.Prefix, log), func() {}, nil
	}
	client, err := tablecache.ConnectRedis(cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable, tables will be recomputed", zap.Error(err))
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("close redis", zap.Error(err))
		}
	}
	return tablecache.New(conj, tablecache.NewRedisStore(client), cfg.TTL, cfg.Prefix, log), cleanup, nil
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	opts := []arabdict.Option{
		arabdict.WithLogger(log.Named("conjugator")),
		arabdict.WithCacheSize(cfg.Analyzer.CacheSize),
	}
	if cfg.Analyzer.Workers > 0 {
		opts = append(opts, arabdict.WithWorkers(cfg.Analyzer.Workers))
	}
	conj, err := arabdict.New(opts...)
	if err != nil {
		return err
	}
	tables, closeCache, err := newTableCache(ctx, cfg.Cache, conj, log)
	if err != nil {
		return err
	}
	defer closeCache()

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.Origins(),
		AllowedMethods: cfg.CORS.Methods(),
		AllowedHeaders: cfg.CORS.Headers(),
		MaxAge:         cfg.CORS.MaxAge,
	})
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      c.Handler(withLogging(log.Named("http"), newMux(conj, tables, log))),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func newServerCmd() *cobra.Command {
	var (
		configPath string
		printEnv   bool
	)
	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve the arabdict conjugator over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printEnv {
				return config.Usage(cmd.OutOrStdout())
			}
			return run(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file (default $"+config.PathEnv+" or "+config.DefaultPath+")")
	cmd.Flags().BoolVar(&printEnv, "print-env", false, "list the environment variables and exit")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newServerCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
