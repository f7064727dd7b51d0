// internal/bootstrap/bootstrap.go
//
// Startup sequence: configure logging, then report configuration findings.
//
// Context
// -------
// Inspect() walks the resolved Settings for risky-but-non-fatal states.  It
// is pure and never fails; each observation becomes a Finding.  Run() owns
// the ordering contract: findings are collected first, the logging sink is
// configured second, and only then are the buffered findings flushed, so a
// warning raised before logging exists is never lost.
//
// A Bootstrap transitions unconfigured → configured exactly once; a second
// Run() is refused.
//
// Notes
// -----
//   • Only Run() touches process-global state (via logger.Setup); Inspect
//     and Flush are safe anywhere.
//   • Oxford commas, two spaces after periods.
package bootstrap

import (
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Rhenium0677/GithubBot/internal/config"
	"github.com/Rhenium0677/GithubBot/internal/logger"
)

// ErrAlreadyConfigured is returned when Run is called on a Bootstrap that
// has already completed its single transition.
var ErrAlreadyConfigured = errors.New("bootstrap: logging already configured")

// Finding is one buffered observation about the loaded configuration.
type Finding struct {
	Level   zapcore.Level
	Message string
	Fields  []any // alternating key/value pairs, sugared style
}

// Bootstrap guards the one-shot unconfigured → configured transition.
type Bootstrap struct {
	configured atomic.Bool
}

func New() *Bootstrap { return &Bootstrap{} }

// Inspect reports risky-but-non-fatal configuration states.  It only
// observes; it never fails and never logs directly.
func Inspect(cfg *config.Settings) []Finding {
	var fs []Finding

	if cfg.App.APIKey == "" {
		fs = append(fs, Finding{
			Level:   zapcore.WarnLevel,
			Message: "API_KEY is not set; the API surface is unauthenticated",
		})
	} else {
		fs = append(fs, Finding{
			Level:   zapcore.InfoLevel,
			Message: "API key configured",
		})
	}

	if cfg.App.Debug {
		fs = append(fs, Finding{
			Level:   zapcore.WarnLevel,
			Message: "debug mode enabled; do not run this in production",
		})
	}

	return fs
}

// Flush writes buffered findings through the configured logger.
func Flush(log *zap.SugaredLogger, findings []Finding) {
	for _, f := range findings {
		switch f.Level {
		case zapcore.WarnLevel:
			log.Warnw(f.Message, f.Fields...)
		case zapcore.ErrorLevel:
			log.Errorw(f.Message, f.Fields...)
		default:
			log.Infow(f.Message, f.Fields...)
		}
	}
}

// Run collects findings, configures the logging sink at the configured
// level, flushes the findings, and marks the Bootstrap configured.  A
// failed logger setup leaves the state unconfigured.
func (b *Bootstrap) Run(cfg *config.Settings, tee bool) (*zap.SugaredLogger, error) {
	if b.configured.Load() {
		return nil, ErrAlreadyConfigured
	}

	findings := Inspect(cfg)

	log, err := logger.Setup(cfg, tee)
	if err != nil {
		return nil, err
	}
	b.configured.Store(true)

	Flush(log, findings)
	return log, nil
}
