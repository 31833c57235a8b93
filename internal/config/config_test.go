package config

import (
	"testing"

	"github.com/qazleague/cup-service/internal/platform/logging"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Errorf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.ServiceName != "cup-service-api" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Errorf("StorageDriver = %q, want memory", cfg.StorageDriver)
	}
	if !cfg.CacheEnabled {
		t.Errorf("CacheEnabled = false, want true")
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.SotaEnabled {
		t.Errorf("SotaEnabled = true, want false")
	}
}

func TestLoadInvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoadInvalidStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid STORAGE_DRIVER")
	}
}

func TestLoadSotaRequiresToken(t *testing.T) {
	t.Setenv("SOTA_ENABLED", "true")
	t.Setenv("LIVE_SYNC_SEASON_IDS", "1")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SOTA_ENABLED without SOTA_TOKEN")
	}
}

func TestLoadSotaRequiresTrigger(t *testing.T) {
	t.Setenv("SOTA_ENABLED", "true")
	t.Setenv("SOTA_TOKEN", "token")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when sota has no season list and no job token")
	}
}

func TestLoadSotaEnabled(t *testing.T) {
	t.Setenv("SOTA_ENABLED", "true")
	t.Setenv("SOTA_TOKEN", "token")
	t.Setenv("LIVE_SYNC_SEASON_IDS", "1, 7,12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.LiveSyncSeasonIDs) != 3 || cfg.LiveSyncSeasonIDs[1] != 7 {
		t.Fatalf("LiveSyncSeasonIDs = %v", cfg.LiveSyncSeasonIDs)
	}
}

func TestLoadInvalidSeasonIDList(t *testing.T) {
	t.Setenv("LIVE_SYNC_SEASON_IDS", "1,zero")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid LIVE_SYNC_SEASON_IDS")
	}
}

func TestLoadUptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UptraceDSN != "https://token@uptrace.dev/1" {
		t.Fatalf("UptraceDSN = %q", cfg.UptraceDSN)
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"warn":    logging.LevelWarn,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
		"info":    logging.LevelInfo,
		"bogus":   logging.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
