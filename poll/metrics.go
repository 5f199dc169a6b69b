package poll

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pollsStarted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "listwarden_polls_started",
	Help: "Number of polls posted",
})

var pollOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listwarden_poll_outcomes",
	Help: "Number of finished polls by outcome",
}, []string{"outcome"})
