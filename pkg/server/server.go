/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/dburkart/descent/pkg/validate"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
)

// MaxInputBytes bounds the size of a single submitted input.
const MaxInputBytes = 1 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	options validate.Options
}

type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type CheckResponse struct {
	ID         string `json:"id"`
	Grammar    string `json:"grammar"`
	Accepted   bool   `json:"accepted"`
	Message    string `json:"message"`
	Population string `json:"population,omitempty"`
	Location   *Span  `json:"location,omitempty"`
}

type ErrResponse struct {
	ID  string `json:"id"`
	Err string `json:"error"`
}

func New(log zerolog.Logger, options validate.Options) Server {
	metrics := NewMetricsStore()
	metrics.RegisterCollector(collectors.NewBuildInfoCollector())

	return Server{
		log,
		metrics,
		options,
	}
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/check", func(w http.ResponseWriter, r *http.Request) {
		grammar := r.URL.Query().Get("grammar")
		if grammar == "" {
			grammar = validate.GrammarProgram
		}
		s.serveCheck(w, r, "check", grammar)
	})

	mux.HandleFunc("/v1/classify", func(w http.ResponseWriter, r *http.Request) {
		s.serveCheck(w, r, "classify", validate.GrammarMonkey)
	})

	mux.Handle("/metrics", s.metrics.Handler())

	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.log.Info().Str("address", address).Msg("listening for check requests")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return errors.Wrap(err, "error listening and serving")
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) serveCheck(w http.ResponseWriter, r *http.Request, endpoint, grammar string) {
	id := uuid.NewString()
	log := s.log.With().Str("id", id).Str("grammar", grammar).Logger()

	if r.Method != http.MethodPost {
		s.writeJSON(w, endpoint, http.StatusMethodNotAllowed, ErrResponse{id, "only POST is supported"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxInputBytes+1))
	if err != nil {
		log.Error().Err(err).Msg("unable to read request body")
		s.writeJSON(w, endpoint, http.StatusBadRequest, ErrResponse{id, "unable to read request body"})
		return
	}
	if len(body) > MaxInputBytes {
		s.writeJSON(w, endpoint, http.StatusRequestEntityTooLarge, ErrResponse{id, "input too large"})
		return
	}

	start := time.Now()
	result, err := validate.Check(grammar, string(body), s.options)
	if err != nil {
		s.writeJSON(w, endpoint, http.StatusBadRequest, ErrResponse{id, err.Error()})
		return
	}
	elapsed := time.Since(start)

	verdict := "rejected"
	if result.Accepted {
		verdict = "accepted"
	}
	s.metrics.IncSessions(grammar, verdict)
	s.metrics.ObserveParseNS(grammar, elapsed.Nanoseconds())

	log.Debug().
		Bool("accepted", result.Accepted).
		Str("dur", elapsed.String()).
		Msg(result.Message())

	resp := CheckResponse{
		ID:       id,
		Grammar:  grammar,
		Accepted: result.Accepted,
		Message:  result.Message(),
	}
	if grammar == validate.GrammarMonkey {
		resp.Population = result.Population.String()
	}
	if loc, ok := result.Location(); ok {
		resp.Location = &Span{Start: loc.Start, End: loc.End}
	}

	s.writeJSON(w, endpoint, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, endpoint string, code int, v any) {
	s.metrics.IncRequests(endpoint, code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("unable to write response")
	}
}
