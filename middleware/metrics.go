package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var commandsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listwarden_commands_processed",
	Help: "Number of commands handled, by command name",
}, []string{"command"})

var commandsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listwarden_commands_failed",
	Help: "Number of commands that returned an error, by command name",
}, []string{"command"})

var commandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "listwarden_command_duration_seconds",
	Help:    "Command handling time, including poll windows",
	Buckets: []float64{0.01, 0.05, 0.25, 1, 5, 30, 120, 600, 1800},
}, []string{"command"})
