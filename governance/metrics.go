package governance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var proposals = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listwarden_proposals",
	Help: "Number of finished add/remove proposals by action and outcome",
}, []string{"action", "outcome"})

var mutations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listwarden_list_mutations",
	Help: "Number of applied list changes by list and action",
}, []string{"list", "action"})
