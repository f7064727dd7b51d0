// Package metrics holds Prometheus instruments that are used across the
// service.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them once the API
// layer serves /metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Rhenium0677/GithubBot/internal/config"
)

var (
	AppInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "githubbot_app_info",
			Help: "Static information about the running configuration.",
		},
		[]string{"name", "version", "debug"},
	)

	ConfigLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "githubbot_config_load_total",
			Help: "Cumulative number of successful configuration loads.",
		})

	ConfigLoadErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "githubbot_config_load_errors_total",
			Help: "Cumulative number of failed configuration loads.",
		})
)

func init() {
	prometheus.MustRegister(
		AppInfo,
		ConfigLoadTotal,
		ConfigLoadErrorsTotal,
	)
}

// SetAppInfo publishes the identity labels of the resolved configuration.
func SetAppInfo(cfg *config.Settings) {
	AppInfo.
		WithLabelValues(cfg.App.Name, cfg.App.Version, strconv.FormatBool(cfg.App.Debug)).
		Set(1)
}
