// internal/bootstrap/bootstrap_test.go
//
// Unit-tests for the startup bootstrap.
//
// Context
// -------
// Inspect must only observe: it returns findings and never fails,
// whatever the Settings look like.  Run enforces the one-shot
// unconfigured → configured transition and flushes findings only after the
// sink exists.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package bootstrap

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/Rhenium0677/GithubBot/internal/config"
)

func testSettings(t *testing.T, apiKey string) *config.Settings {
	t.Helper()
	return &config.Settings{
		App:   config.App{Name: "GithubBot", Version: "0.1.0", LogLevel: "INFO", APIKey: apiKey},
		Paths: config.Paths{Root: t.TempDir()},
	}
}

func TestInspect_MissingAPIKeyWarns(t *testing.T) {
	fs := Inspect(testSettings(t, ""))
	if len(fs) == 0 {
		t.Fatal("want at least one finding for the API-key rule")
	}
	f := fs[0]
	if f.Level != zapcore.WarnLevel {
		t.Fatalf("level = %v, want warn", f.Level)
	}
	if !strings.Contains(f.Message, "unauthenticated") {
		t.Fatalf("message should call out the unauthenticated surface: %q", f.Message)
	}
}

func TestInspect_PresentAPIKeyInforms(t *testing.T) {
	fs := Inspect(testSettings(t, "sekrit"))
	if len(fs) == 0 || fs[0].Level != zapcore.InfoLevel {
		t.Fatalf("want informational finding for a configured key, got %+v", fs)
	}
}

func TestInspect_DebugModeWarns(t *testing.T) {
	cfg := testSettings(t, "sekrit")
	cfg.App.Debug = true
	fs := Inspect(cfg)
	var found bool
	for _, f := range fs {
		if f.Level == zapcore.WarnLevel && strings.Contains(f.Message, "debug") {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a debug-mode warning, got %+v", fs)
	}
}

func TestRun_TransitionsOnce(t *testing.T) {
	b := New()

	if _, err := b.Run(testSettings(t, ""), false); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if _, err := b.Run(testSettings(t, ""), false); !errors.Is(err, ErrAlreadyConfigured) {
		t.Fatalf("second Run error = %v, want ErrAlreadyConfigured", err)
	}
}

func TestRun_BadLevelLeavesUnconfigured(t *testing.T) {
	b := New()
	cfg := testSettings(t, "")
	cfg.App.LogLevel = "loud"

	if _, err := b.Run(cfg, false); err == nil {
		t.Fatal("want error from the invalid level")
	}

	// The failed attempt must not consume the single transition.
	cfg.App.LogLevel = "INFO"
	if _, err := b.Run(cfg, false); err != nil {
		t.Fatalf("Run after failed attempt: %v", err)
	}
}
