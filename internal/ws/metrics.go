// internal/ws/metrics.go
package ws

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	wsConnectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "websocket_connections_total",
			Help: "Total number of WebSocket connections",
		},
	)

	wsActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	relayMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_messages_sent_total",
			Help: "Total number of chat messages accepted by the router",
		},
	)

	relayFilesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_files_sent_total",
			Help: "Total number of file payloads relayed",
		},
	)

	relayFilesRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_files_rejected_total",
			Help: "Total number of file payloads rejected or undeliverable",
		},
	)
)
