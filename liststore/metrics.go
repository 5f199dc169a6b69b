package liststore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var storeWriteErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: "listwarden_store_write_errors",
	Help: "Number of failed list document writes",
})

var storeWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "listwarden_store_writes",
	Help: "Number of list document writes by backend",
}, []string{"backend"})
