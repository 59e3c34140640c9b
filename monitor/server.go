// Copyright (C) 2015  Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

// Package monitor provides an embedded HTTP server to expose
// metrics for monitoring
package monitor

import (
	_ "expvar" // Go documentation recommended usage
	"fmt"
	"net/http"
	_ "net/http/pprof" // Go documentation recommended usage

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aristanetworks/verset/logger"
)

// Server represents a monitoring server
type Server interface {
	Run()
}

// server contains information for the monitoring server
type server struct {
	// Server name e.g. host[:port]
	serverName string
	registry   *prometheus.Registry
	log        logger.Logger
}

// NewMonitorServer creates a new server struct. Any collectors, such as
// a metrics.TableCollector, should be registered with reg before Run
// is called; a nil reg disables /metrics. log receives the one message
// Run can produce: the server failing to bind its address.
func NewMonitorServer(serverName string, reg *prometheus.Registry, log logger.Logger) Server {
	return &server{
		serverName: serverName,
		registry:   reg,
		log:        log,
	}
}

func debugHandler(hasMetrics bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		indexTmpl := `<html>
		<head>
		<title>/debug</title>
		</head>
		<body>
		<p>/debug</p>
		<div><a href="/debug/vars">vars</a></div>
		<div><a href="/debug/pprof">pprof</a></div>
		`
		if hasMetrics {
			indexTmpl += `<div><a href="/metrics">metrics</a></div>`
		}
		indexTmpl += `
		</body>
		</html>
		`
		fmt.Fprint(w, indexTmpl)
	}
}

// Run sets up the HTTP server and any handlers. It registers on
// http.DefaultServeMux, alongside expvar's and net/http/pprof's own
// side-effect registrations, so Run must only be called once per
// process.
func (s *server) Run() {
	http.HandleFunc("/debug", debugHandler(s.registry != nil))
	http.HandleFunc("/debug/loglevel", newLogsetSrv().ServeHTTP)
	if s.registry != nil {
		http.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	}

	err := http.ListenAndServe(s.serverName, nil)
	if err != nil {
		s.log.Errorf("Could not start monitor server: %s", err)
	}
}
