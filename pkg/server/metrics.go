/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(endpoint string, code int)
	IncSessions(grammar, result string)
	ObserveParseNS(grammar string, t int64)
}

type metricsStore struct {
	registry *prometheus.Registry
	Requests *prometheus.CounterVec
	Sessions *prometheus.CounterVec
	ParseNS  *prometheus.HistogramVec
}

var (
	EndpointLabel = "endpoint"
	CodeLabel     = "code"
	GrammarLabel  = "grammar"
	ResultLabel   = "result"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	// Parsing is quick, so buckets run from 50µs up to ~1ms
	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(5*i*int(10*time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "descent_requests",
			Help: "Request counts for the descent endpoints",
		}, []string{EndpointLabel, CodeLabel}),
		Sessions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "descent_parse_sessions",
			Help: "Parse sessions by grammar and verdict",
		}, []string{GrammarLabel, ResultLabel}),
		ParseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "descent_parse_ns",
			Help:    "Time spent in a single parse session",
			Buckets: buckets,
		}, []string{GrammarLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(endpoint string, code int) {
	ms.Requests.With(prometheus.Labels{EndpointLabel: endpoint, CodeLabel: http.StatusText(code)}).Inc()
}

func (ms *metricsStore) IncSessions(grammar, result string) {
	ms.Sessions.With(prometheus.Labels{GrammarLabel: grammar, ResultLabel: result}).Inc()
}

func (ms *metricsStore) ObserveParseNS(grammar string, t int64) {
	ms.ParseNS.
		With(prometheus.Labels{GrammarLabel: grammar}).
		Observe(float64(t))
}
