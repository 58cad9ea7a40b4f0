package web

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/etnz/compound"
)

const maxBodySize = 1 << 16

type errorBody struct {
	Kind    compound.Kind `json:"kind,omitempty"`
	Field   string        `json:"field,omitempty"`
	Message string        `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	res, ok := s.project(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	res, ok := s.project(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, compound.SeriesFrom(res.Ledger))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// project decodes the request input and computes its projection. On failure
// the error response is already written.
func (s *Server) project(w http.ResponseWriter, r *http.Request) (*compound.Result, bool) {
	in, err := decodeInput(w, r)
	if err != nil {
		s.writeInputError(w, r, err)
		return nil, false
	}

	params, res, err := in.Project(s.cfg.Currency)
	if err != nil {
		s.writeInputError(w, r, err)
		return nil, false
	}
	s.metrics.Projections.WithLabelValues("ok").Inc()
	s.metrics.ProjectionYears.Observe(float64(params.Years))
	s.log.Debug().
		Str("request_id", RequestID(r.Context())).
		Int("years", params.Years).
		Str("final_balance", res.Summary.FinalBalance.String()).
		Msg("projection computed")
	return res, true
}

// decodeInput reads the input from a JSON body, or from form values.
func decodeInput(w http.ResponseWriter, r *http.Request) (compound.Input, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var in compound.Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return compound.Input{}, err
		}
		return in, nil
	}

	if err := r.ParseForm(); err != nil {
		return compound.Input{}, err
	}
	return compound.InputFromValues(r.Form), nil
}

func (s *Server) writeInputError(w http.ResponseWriter, r *http.Request, err error) {
	body := errorBody{Message: "invalid request body"}
	var perr *compound.Error
	if errors.As(err, &perr) {
		body = errorBody{Kind: perr.Kind, Field: perr.Field, Message: perr.Error()}
		s.metrics.Projections.WithLabelValues(string(perr.Kind)).Inc()
	}
	s.log.Debug().Str("request_id", RequestID(r.Context())).Err(err).Msg("invalid input")
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: body})
}

// writeJSON sends v as the JSON response. Once the header is written the
// status cannot change, so an encoding failure is only logged.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Int("status", status).Msg("failed to write response")
	}
}
