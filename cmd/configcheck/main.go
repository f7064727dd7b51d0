// cmd/configcheck/main.go
//
// GithubBot – configuration entry point.
//
// Boot life-cycle
// ---------------
//
//  1. Resolve Settings (defaults < .env < process env), fail fast on any
//     coercion or validation error.
//
//  2. Start the daily rotating logger at the configured level (tees to
//     console when running in a TTY), then flush buffered sanity findings.
//
//  3. Publish the app_info metric for the (externally served) /metrics
//     endpoint.
//
//  4. Print the resolved settings, secrets masked, one key per line.
//
// Exit code is 1 whenever step 1 or 2 fails; the service must never come up
// on a partially-resolved configuration.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/Rhenium0677/GithubBot/internal/bootstrap"
	"github.com/Rhenium0677/GithubBot/internal/config"
	"github.com/Rhenium0677/GithubBot/internal/metrics"
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	//
	// ── 1.  Resolve configuration ───────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		metrics.ConfigLoadErrorsTotal.Inc()
		log.Fatalf("load configuration: %v", err)
	}
	metrics.ConfigLoadTotal.Inc()

	//
	// ── 2.  Logging + sanity findings ───────────────────────────────────
	//
	boot := bootstrap.New()
	zl, err := boot.Run(cfg, runningInTTY())
	if err != nil {
		log.Fatalf("configure logging: %v", err)
	}

	//
	// ── 3.  Metrics ─────────────────────────────────────────────────────
	//
	metrics.SetAppInfo(cfg)

	//
	// ── 4.  Redacted dump ───────────────────────────────────────────────
	//
	dump := cfg.Redacted()
	keys := make([]string, 0, len(dump))
	for k := range dump {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%-34s %s\n", k, dump[k])
	}

	zl.Infow("configuration ok",
		"app", cfg.App.Name,
		"version", cfg.App.Version,
		"debug", cfg.App.Debug,
		"keys", len(keys),
	)
}
