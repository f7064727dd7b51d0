// internal/logger/logger_test.go
//
// Unit-tests for logger setup and the noisy-subsystem floors.
//
// Context
// -------
// Three behaviours matter here:
//
//   • Setup fails fast on an unrecognized LOG_LEVEL (a silently wrong
//     verbosity is dangerous).
//   • Level matching is case-insensitive.
//   • HTTPAccess and SQL channels never log below warn, even when the
//     global level is debug.
//
// The floor tests use zap's observer core so no files are involved.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Rhenium0677/GithubBot/internal/config"
)

func testSettings(t *testing.T, level string) *config.Settings {
	t.Helper()
	return &config.Settings{
		App:   config.App{Name: "GithubBot", Version: "0.1.0", LogLevel: level},
		Paths: config.Paths{Root: t.TempDir()},
	}
}

func TestSetup_InvalidLevelFailsFast(t *testing.T) {
	if _, err := Setup(testSettings(t, "loud"), false); err == nil {
		t.Fatal("want error for unrecognized level, got nil")
	}
}

func TestSetup_LevelCaseInsensitive(t *testing.T) {
	for _, lvl := range []string{"INFO", "info", "Warn", "DEBUG"} {
		if _, err := Setup(testSettings(t, lvl), false); err != nil {
			t.Fatalf("Setup(%q): %v", lvl, err)
		}
	}
}

func TestHTTPAccess_FlooredAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core).Sugar()

	HTTPAccess(base).Infow("GET /health 200")
	if logs.Len() != 0 {
		t.Fatalf("info-level access log leaked through the warn floor: %v", logs.All())
	}

	HTTPAccess(base).Warnw("GET /search 499 slow")
	if logs.Len() != 1 {
		t.Fatalf("warn-level access log should pass, got %d entries", logs.Len())
	}
}

func TestSQL_FlooredAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	base := zap.New(core).Sugar()

	SQL(base).Infow("SELECT 1")
	SQL(base).Debugw("BEGIN")
	if logs.Len() != 0 {
		t.Fatalf("routine SQL chatter leaked through the warn floor: %v", logs.All())
	}

	SQL(base).Errorw("deadlock detected")
	if logs.Len() != 1 {
		t.Fatalf("error-level SQL log should pass, got %d entries", logs.Len())
	}
}

func TestFloor_DoesNotLowerStricterGlobal(t *testing.T) {
	// Global at error: the warn floor must not re-enable warn output.
	core, logs := observer.New(zapcore.ErrorLevel)
	base := zap.New(core).Sugar()

	HTTPAccess(base).Warnw("should stay suppressed")
	if logs.Len() != 0 {
		t.Fatalf("floor lowered a stricter global level: %v", logs.All())
	}
}
