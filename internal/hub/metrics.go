package hub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConnectedSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hub_connected_sessions",
		Help: "Number of currently connected dashboard sessions",
	})

	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hub_commands_total",
		Help: "Dispatched hub commands by name and outcome",
	}, []string{"command", "status"})

	UnknownCommandsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hub_unknown_commands_total",
		Help: "Inbound commands with no route in the command table",
	})
)
