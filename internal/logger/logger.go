// internal/logger/logger.go
//
// Structured JSON logger (Zap + Lumberjack).
//
// Context
// -------
// GithubBot writes lifecycle and error events to one JSON log per day under
// `<root>/logs/YYYY-MM-DD.log`.  When running in an interactive TTY we tee
// the same events, colorized, to stdout.  Rotation, compression, and
// retention are handled by Lumberjack; no external log-rotate job is
// required.
//
// The global threshold comes from the resolved LOG_LEVEL, matched
// case-insensitively.  An unrecognized level is a hard error: a silently
// wrong verbosity is worse than a refused boot.  Two chatty subsystems,
// HTTP access and the SQL driver, get dedicated channels whose threshold
// never drops below warn regardless of the global level.
//
// Usage
// -----
//
//	log, err := logger.Setup(cfg, runningInTTY())
//	if err != nil { … }
//	logger.HTTPAccess(log).Infow("GET /health")   // suppressed below warn
//
// Notes
// -----
// • Zap core uses ISO-8601 timestamps and lowercase levels.
// • Errors are written to the same sink via `ErrorOutput`.
// • Oxford commas, two spaces after periods.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Rhenium0677/GithubBot/internal/config"
)

// Setup returns a *zap.SugaredLogger that writes JSON to /logs/YYYY-MM-DD.log
// at the configured level.  When tee == true, a colored console core is also
// attached.  The logger is installed as the process-wide default via
// zap.ReplaceGlobals.
func Setup(cfg *config.Settings, tee bool) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.App.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("logger: unrecognized level %q: %w", cfg.App.LogLevel, err)
	}

	logDir := filepath.Join(cfg.Paths.Root, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	fileName := time.Now().Format("2006-01-02") + ".log"
	fileSink := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, fileName),
		MaxSize:    50, // MB
		MaxBackups: 7,  // keep last seven files
		MaxAge:     14, // days
		Compress:   true,
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		CallerKey:    "caller",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeLevel:  zapcore.LowercaseLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}
	jsonCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(fileSink),
		level,
	)

	var cores []zapcore.Core
	cores = append(cores, jsonCore)

	if tee {
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encCfg),
			zapcore.AddSync(os.Stdout),
			level,
		)
		cores = append(cores, consoleCore)
	}

	z := zap.New(
		zapcore.NewTee(cores...),
		zap.ErrorOutput(zapcore.AddSync(fileSink)),
	).Sugar()

	// Make this the global logger so zap.L() works everywhere after startup.
	zap.ReplaceGlobals(z.Desugar())

	z.Infow("logger online", "level", level.String(), "tee", tee)
	return z, nil
}

// HTTPAccess returns the request-log channel.  Its effective threshold is
// the higher of the global level and warn, so routine request traffic never
// floods an info-level log.
func HTTPAccess(base *zap.SugaredLogger) *zap.SugaredLogger {
	return floored(base, "http.access")
}

// SQL returns the database-driver channel, floored at warn like HTTPAccess
// so per-statement chatter stays out of the log.
func SQL(base *zap.SugaredLogger) *zap.SugaredLogger {
	return floored(base, "sql")
}

func floored(base *zap.SugaredLogger, name string) *zap.SugaredLogger {
	return base.Desugar().
		Named(name).
		WithOptions(zap.IncreaseLevel(zapcore.WarnLevel)).
		Sugar()
}
