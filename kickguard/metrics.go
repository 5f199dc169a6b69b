package kickguard

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var kicks = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listwarden_kicks",
	Help: "Number of kick attempts by result",
}, []string{"result"})
