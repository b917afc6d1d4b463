package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"palette-api/internal/config"
	"palette-api/internal/model"
	"palette-api/internal/ratelimit"
	"palette-api/internal/server"
	"palette-api/internal/themes"
	"palette-api/internal/ui"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const version = "v1.0.0"

func main() {
	// Load .env file if it exists
	// We ignore the error because in production/docker we might be relying on system env vars
	_ = godotenv.Load()

	ui.EmitBanner(version, ui.PickTagline())

	cfg := config.Load()
	ui.SetDebug(cfg.Debug)
	if lvl, ok := ui.ParseLevel(cfg.LogLevel); ok {
		ui.SetLevel(lvl)
	}

	if cfg.IsDevelopment() {
		ui.LogStatus("info", "Environment: "+ui.Warn("DEVELOPMENT"))
	} else {
		ui.LogStatus("info", "Environment: "+ui.Success("PRODUCTION"))
	}

	if err := cfg.Validate(); err != nil {
		ui.LogStatus("error", err.Error())
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		ui.LogStatus("error", "Rate limiter: "+err.Error())
		os.Exit(1)
	}
	defer closeLimiter()

	bedrock, err := model.NewBedrock(ctx, model.BedrockConfig{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		ModelID:         cfg.ModelID,
	})
	if err != nil {
		ui.LogStatus("error", "Bedrock client: "+err.Error())
		os.Exit(1)
	}
	if !cfg.HasStaticCredentials() {
		ui.LogStatus("warning", "AWS keys not set, using the default credential chain")
	}

	svc := themes.NewService(
		model.NewThrottled(bedrock, cfg.ModelRPS, cfg.ModelBurst),
		limiter,
		themes.Config{MaxTokens: cfg.ModelMaxTokens, Timeout: cfg.ModelTimeout},
	)

	printSummary(cfg)

	if cfg.MetricsListen != "" {
		metrics := server.NewMetricsServer(cfg.MetricsListen)
		metrics.Start()
		ui.LogStatus("info", "Metrics: http://localhost"+cfg.MetricsListen+"/metrics")

		go func() {
			<-ctx.Done()
			ui.LogStatus("warning", "Shutting down gracefully...")
			_ = metrics.Shutdown(context.Background())
		}()
	}

	srv := server.NewServer(server.Options{
		Addr:       cfg.Addr(),
		CORSOrigin: cfg.CORSOrigin,
		TrustXFF:   cfg.TrustXFF,
	}, svc)
	if err := srv.Start(ctx); err != nil {
		ui.LogStatus("error", "Server failed: "+err.Error())
		log.Fatal(err)
	}
	ui.LogStatus("success", "Server stopped")
}

// newLimiter builds the configured rate limiter backend. The returned func
// releases its resources.
func newLimiter(ctx context.Context, cfg *config.Config) (themes.Limiter, func(), error) {
	if cfg.RateLimitBackend == config.BackendRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, err
		}

		lim := ratelimit.NewRedis(rdb, cfg.RateLimit, cfg.RateWindow, ratelimit.WithPrefix(cfg.RedisPrefix))
		return lim, func() { _ = rdb.Close() }, nil
	}

	mem := ratelimit.NewMemory(cfg.RateLimit, cfg.RateWindow,
		ratelimit.WithMaxClients(cfg.RateLimitMaxClients),
		ratelimit.WithSweepEvery(cfg.RateLimitSweep),
	)
	mem.StartJanitor(ctx)
	return mem, func() {}, nil
}

func printSummary(cfg *config.Config) {
	ui.LogGroup("Palette API")
	ui.LogGroupItem("Port", cfg.Port)
	ui.LogGroupItem("CORS origin", cfg.CORSOrigin)
	ui.LogGroupItem("Model", cfg.ModelID+" ("+cfg.AWSRegion+")")
	ui.LogGroupItem("Model timeout", cfg.ModelTimeout.String())
	ui.LogGroupItem("Rate limit", strconv.Itoa(cfg.RateLimit)+" per "+cfg.RateWindow.String()+" via "+cfg.RateLimitBackend)
	if cfg.ModelRPS > 0 {
		ui.LogGroupItem("Model throttle", strconv.FormatFloat(cfg.ModelRPS, 'f', -1, 64)+" rps")
	}
	ui.LogGroupEnd()
}
