package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/2beens/gymdash/internal"
	"github.com/2beens/gymdash/internal/config"
	"github.com/2beens/gymdash/internal/logging"
	"github.com/2beens/gymdash/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	envSentryDSN        = "SENTRY_DSN"
	envRedisPassword    = "GYMDASH_REDIS_PASS"
	envPostgresPassword = "GYMDASH_PG_PASS"
	envOtelServiceName  = "OTEL_SERVICE_NAME"
	envHoneycombEnabled = "HONEYCOMB_ENABLED"
	envHoneycombApiKey  = "HONEYCOMB_API_KEY"
)

func main() {
	fmt.Println("starting gymdash ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	catalogPath := flag.String("catalog", "", "exercise catalog TOML file, overrides catalog_path from the config")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}

	flushLogs := logging.Setup(logging.LoggerSetupParams{
		LogFileName:   cfg.LogsPath,
		LogToStdout:   cfg.LogToStdout,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogFormatJSON,
		ServiceName:   "gymdash-service",
		Environment:   cfg.Environment,
		SentryEnabled: cfg.SentryEnabled,
		SentryDSN:     os.Getenv(envSentryDSN),
	})
	defer flushLogs()

	versionInfo := getVersionInfo()
	log.WithFields(log.Fields{
		"env":      cfg.Environment,
		"port":     cfg.Port,
		"logs":     cfg.LogsPath,
		"postgres": cfg.PostgresEnabled,
		"redis":    cfg.RedisEnabled,
		"version":  versionInfo,
	}).Warn("---->> gymdash service configured")

	redisPassword := os.Getenv(envRedisPassword)
	if cfg.RedisEnabled && redisPassword == "" {
		log.Warnf("redis password not set. use %s", envRedisPassword)
	}

	if otelServiceName := os.Getenv(envOtelServiceName); otelServiceName == "" {
		log.Warnf("%s env var not set", envOtelServiceName)
	}

	honeycombEnabled := os.Getenv(envHoneycombEnabled) == "true"
	if honeycombEnabled {
		if os.Getenv(envHoneycombApiKey) == "" {
			log.Warnf("%s env var not set", envHoneycombApiKey)
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			PostgresPassword:        os.Getenv(envPostgresPassword),
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnf("shutdown signal received, stopping gymdash ...")

	if err := server.GracefulShutdown(); err != nil {
		log.Errorf("graceful shutdown: %s", err)
	}
}

// getVersionInfo prefers the VCS revision stamped into the binary and falls
// back to asking git, which assumes the binary runs from the project root.
func getVersionInfo() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}

	stdout, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
		return "unknown"
	}
	return strings.TrimSpace(pkg.BytesToString(stdout))
}
