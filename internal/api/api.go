// Package api serves the resistance engines over HTTP with JSON bodies
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/alexiusacademia/gosteel/internal/aisc"
	"github.com/alexiusacademia/gosteel/internal/buckling"
	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/alexiusacademia/gosteel/internal/interaction"
	"github.com/alexiusacademia/gosteel/internal/profile"
	"github.com/alexiusacademia/gosteel/internal/report"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/gorilla/mux"
)

// maxBody caps request bodies
const maxBody = 1 << 20

// Server holds what the handlers share. Table may be nil, in which case
// members must carry their section inline.
type Server struct {
	Table   *profile.Table
	Solver  compression.SolverConfig
	Limiter *IPRateLimiter
}

// Router builds the route table. Routes sit on the root router with their
// full paths so that a wrong method answers 405.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)
	if s.Limiter != nil {
		r.Use(s.Limiter.Middleware)
	}
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method "+req.Method+" not allowed on "+req.URL.Path)
	})

	r.HandleFunc("/api/classify", s.Classify).Methods("POST")
	r.HandleFunc("/api/compression", s.Compression).Methods("POST")
	r.HandleFunc("/api/flexure", s.Flexure).Methods("POST")
	r.HandleFunc("/api/interaction", s.Interaction).Methods("POST")
	r.HandleFunc("/api/report/pdf", s.Report).Methods("POST")
	r.HandleFunc("/api/profiles/{designation}", s.Profile).Methods("GET")
	r.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	return r
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%v)", clientIP(r), r.Method, r.URL.Path, time.Since(start))
	})
}

// ProfileRef names a tabulated profile
type ProfileRef struct {
	Designation string `json:"designation"`
	Type        string `json:"type,omitempty"`
}

// MemberRequest is the body shared by every calculation endpoint. Either
// Section (inline JSON accepted by section.Parse) or Profile is given.
type MemberRequest struct {
	Section json.RawMessage           `json:"section,omitempty"`
	Profile *ProfileRef               `json:"profile,omitempty"`
	Fy      float64                   `json:"fy"`
	Lengths buckling.Lengths          `json:"lengths"`
	Lb      float64                   `json:"lb"`
	Cb      float64                   `json:"cb"`
	Axis    string                    `json:"axis,omitempty"`
	Solver  *compression.SolverConfig `json:"solver,omitempty"`
}

// resolve returns the section and material of a request
func (s *Server) resolve(req MemberRequest) (*section.Properties, aisc.Material, diag.Warnings, error) {
	m := aisc.Steel(req.Fy)
	if !m.Valid() {
		return nil, m, nil, diag.Invalid("fy must be positive: %g", req.Fy)
	}
	switch {
	case len(req.Section) > 0:
		p, err := section.Parse(req.Section)
		return p, m, nil, err
	case req.Profile != nil:
		if s.Table == nil {
			return nil, m, nil, diag.Invalid("no profile table is loaded, send the section inline")
		}
		p, w, err := s.Table.Section(req.Profile.Designation, req.Profile.Type)
		return p, m, w, err
	}
	return nil, m, nil, diag.Invalid("give a section or a profile")
}

func (s *Server) member(req MemberRequest) (interaction.Member, diag.Warnings, error) {
	p, m, w, err := s.resolve(req)
	if err != nil {
		return interaction.Member{}, nil, err
	}
	cfg := s.Solver
	if req.Solver != nil {
		cfg = *req.Solver
	}
	return interaction.Member{
		Section: p, Material: m, Lengths: req.Lengths, Lb: req.Lb, Cb: req.Cb, Solver: cfg,
	}, w, nil
}

// Classify handles POST /api/classify
func (s *Server) Classify(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if !decode(w, r, &req) {
		return
	}
	p, m, warn, err := s.resolve(req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	c, err := classify.Section(p, m)
	if err != nil {
		writeFailure(w, err)
		return
	}
	c.Notes = diag.Merge(warn, c.Notes)
	writeJSON(w, http.StatusOK, c)
}

// Compression handles POST /api/compression
func (s *Server) Compression(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if !decode(w, r, &req) {
		return
	}
	mem, warn, err := s.member(req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	res, err := compression.Capacity(mem.Section, mem.Material, mem.Lengths, mem.Solver)
	if err != nil {
		writeFailure(w, err)
		return
	}
	res.Warnings = diag.Merge(warn, res.Warnings)
	writeJSON(w, http.StatusOK, res)
}

// Flexure handles POST /api/flexure; axis defaults to x
func (s *Server) Flexure(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if !decode(w, r, &req) {
		return
	}
	axis := flexure.Major
	if req.Axis != "" {
		a, err := flexure.ParseAxis(req.Axis)
		if err != nil {
			writeFailure(w, err)
			return
		}
		axis = a
	}
	p, m, warn, err := s.resolve(req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	res, err := flexure.Capacity(p, m, axis, req.Lb, req.Cb)
	if err != nil {
		writeFailure(w, err)
		return
	}
	res.Warnings = diag.Merge(warn, res.Warnings)
	writeJSON(w, http.StatusOK, res)
}

// InteractionRequest checks one demand, or every combination of a set
// when Effects is given
type InteractionRequest struct {
	MemberRequest
	Demand       *interaction.Demand `json:"demand,omitempty"`
	Effects      *aisc.LoadEffects   `json:"effects,omitempty"`
	Combinations string              `json:"combinations,omitempty"` // full or gravity
}

// InteractionResponse carries either Check or Sweep
type InteractionResponse struct {
	Check      *interaction.Result    `json:"check,omitempty"`
	Sweep      *interaction.Sweep     `json:"sweep,omitempty"`
	Capacities interaction.Capacities `json:"capacities"`
	Warnings   diag.Warnings          `json:"warnings"`
}

func (s *Server) interact(req InteractionRequest) (interaction.Member, InteractionResponse, error) {
	mem, warn, err := s.member(req.MemberRequest)
	if err != nil {
		return mem, InteractionResponse{}, err
	}
	switch {
	case req.Effects != nil:
		combos, ok := aisc.Combinations(req.Combinations)
		if !ok {
			return mem, InteractionResponse{}, diag.Invalid("unknown combination set %q", req.Combinations)
		}
		sw, err := interaction.CheckCombinations(mem, *req.Effects, combos)
		if err != nil {
			return mem, InteractionResponse{}, err
		}
		sw.Warnings = diag.Merge(warn, sw.Warnings)
		return mem, InteractionResponse{Sweep: &sw, Capacities: sw.Capacities, Warnings: sw.Warnings}, nil
	case req.Demand != nil:
		res, c, err := interaction.Check(mem, *req.Demand)
		if err != nil {
			return mem, InteractionResponse{}, err
		}
		res.Warnings = diag.Merge(warn, res.Warnings)
		return mem, InteractionResponse{Check: &res, Capacities: c, Warnings: res.Warnings}, nil
	}
	return mem, InteractionResponse{}, diag.Invalid("give a demand or load effects")
}

// Interaction handles POST /api/interaction
func (s *Server) Interaction(w http.ResponseWriter, r *http.Request) {
	var req InteractionRequest
	if !decode(w, r, &req) {
		return
	}
	_, res, err := s.interact(req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ReportRequest is an interaction request with a report header
type ReportRequest struct {
	InteractionRequest
	Header report.Header `json:"header"`
}

// Report handles POST /api/report/pdf
func (s *Server) Report(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if !decode(w, r, &req) {
		return
	}
	mem, res, err := s.interact(req.InteractionRequest)
	if err != nil {
		writeFailure(w, err)
		return
	}
	pdf, err := report.Render(report.Sheet{
		Header:     req.Header,
		Member:     mem,
		Capacities: res.Capacities,
		Check:      res.Check,
		Sweep:      res.Sweep,
	})
	if err != nil {
		writeFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		log.Printf("report output: %v", err)
	}
}

// ProfileResponse is a tabulated profile converted to mm-based units
type ProfileResponse struct {
	Section  *section.Properties `json:"section"`
	Warnings diag.Warnings       `json:"warnings"`
}

// Profile handles GET /api/profiles/{designation}?type=TAG
func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	if s.Table == nil {
		writeError(w, http.StatusServiceUnavailable, "no profile table is loaded")
		return
	}
	name := mux.Vars(r)["designation"]
	p, warn, err := s.Table.Section(name, r.URL.Query().Get("type"))
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{Section: p, Warnings: warn})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return false
	}
	return true
}

// status maps the failure taxonomy to HTTP codes
func status(err error) int {
	switch {
	case errors.Is(err, diag.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, diag.ErrAmbiguousLookup):
		return http.StatusConflict
	case errors.Is(err, diag.ErrInvalidInput),
		errors.Is(err, diag.ErrIncompleteProperties),
		errors.Is(err, diag.ErrUnsupportedFamily):
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func writeFailure(w http.ResponseWriter, err error) {
	writeError(w, status(err), err.Error())
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
