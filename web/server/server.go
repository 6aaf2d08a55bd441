package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/renderer"
	"github.com/opticslab/go-beamtrace/pkg/scene"
	"github.com/opticslab/go-beamtrace/pkg/tracer"
)

// Config holds the web service configuration, loaded from the environment
type Config struct {
	Port              int    `envconfig:"PORT" default:"8080"`
	ScenesDir         string `envconfig:"SCENES_DIR" default:"./scenes"`
	MaxEvents         int    `envconfig:"MAX_EVENTS" default:"80"`
	ParallelThreshold int    `envconfig:"PARALLEL_THRESHOLD" default:"20"`
	AllowedOrigins    string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

// LoadConfig reads the service configuration from the environment
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("beamtrace", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Server exposes the trace engine over HTTP. Every request runs one
// stateless trace pass; the server keeps no cross-request state.
type Server struct {
	cfg    *Config
	logger *slog.Logger
}

// New creates a server with the given config and logger
func New(cfg *Config, logger *slog.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Router builds the API routes
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/scenes", s.handleScenes).Methods(http.MethodGet)
	api.HandleFunc("/trace", s.handleTrace).Methods(http.MethodPost)
	api.HandleFunc("/render", s.handleRender).Methods(http.MethodPost)
	api.HandleFunc("/live", s.handleLive).Methods(http.MethodGet)

	return r
}

// requestID tags every request with a short id for log correlation
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()[:8]
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "id", id, "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}

// TraceRequest selects a scene (built-in id or inline config) and the
// trace parameters for one pass
type TraceRequest struct {
	Scene             string        `json:"scene,omitempty"`  // built-in scene id
	Config            *scene.Config `json:"config,omitempty"` // inline scene, overrides Scene
	MaxEvents         int           `json:"maxEvents,omitempty"`
	ParallelThreshold int           `json:"parallelThreshold,omitempty"`
}

// TraceResponse carries the traced paths and pass statistics
type TraceResponse struct {
	TraceID  string    `json:"traceId"`
	Paths    []PathDTO `json:"paths"`
	Stats    StatsDTO  `json:"stats"`
	Warnings []string  `json:"warnings,omitempty"`
}

// PathDTO is the wire form of one traced ray path
type PathDTO struct {
	Points       []PointDTO       `json:"points"`
	Wavelength   float64          `json:"wavelength,omitempty"`
	Intensity    float64          `json:"intensity"`
	Truncated    bool             `json:"truncated,omitempty"`
	Polarization *PolarizationDTO `json:"polarization,omitempty"`
}

// PointDTO is a bench coordinate in mm
type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PolarizationDTO is the Stokes-derived inspection summary of a terminal
// Jones vector
type PolarizationDTO struct {
	Stokes   [4]float64 `json:"stokes"` // I, Q, U, V
	Degree   float64    `json:"degree"`
	AngleDeg float64    `json:"angleDeg"`
}

// StatsDTO is the wire form of trace statistics
type StatsDTO struct {
	SourceRays int  `json:"sourceRays"`
	Paths      int  `json:"paths"`
	Events     int  `json:"events"`
	Workers    int  `json:"workers"`
	Sequential bool `json:"sequential"`
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes plus any scene files in the
// configured directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	infos := scene.ListBuiltinScenes()

	fileScenes, err := scene.ListSceneFiles(s.cfg.ScenesDir)
	if err != nil {
		s.logger.Warn("scan scene files", "error", err)
	} else {
		infos = append(infos, fileScenes...)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": infos})
}

// handleTrace runs one trace pass and returns the paths as JSON
func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	var req TraceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	resp, status, err := s.runTrace(&req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleRender runs one trace pass and returns a PNG of the bench
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req TraceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	width := queryInt(r, "width", 800, 100, 4000)
	height := queryInt(r, "height", 600, 100, 4000)

	benchScene, _, status, err := s.resolveScene(&req)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	paths, _ := benchScene.Trace(s.params(&req))

	img := renderer.NewRenderer(renderer.DefaultConfig(width, height)).Render(benchScene, paths)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("encode png: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// runTrace resolves the request's scene, traces it, and builds the wire
// response
func (s *Server) runTrace(req *TraceRequest) (*TraceResponse, int, error) {
	benchScene, loadWarnings, status, err := s.resolveScene(req)
	if err != nil {
		return nil, status, err
	}

	paths, stats := benchScene.Trace(s.params(req))

	resp := &TraceResponse{
		TraceID: uuid.New().String(),
		Paths:   make([]PathDTO, 0, len(paths)),
		Stats: StatsDTO{
			SourceRays: stats.SourceRays,
			Paths:      stats.Paths,
			Events:     stats.Events,
			Workers:    stats.Workers,
			Sequential: stats.Sequential,
		},
		Warnings: append(loadWarnings, stats.Warnings...),
	}

	for i := range paths {
		resp.Paths = append(resp.Paths, pathToDTO(&paths[i]))
	}

	return resp, http.StatusOK, nil
}

// resolveScene builds the scene snapshot named by the request
func (s *Server) resolveScene(req *TraceRequest) (*scene.Scene, []string, int, error) {
	if req.Config != nil {
		benchScene, warnings, err := scene.BuildScene(req.Config)
		if err != nil {
			return nil, nil, http.StatusBadRequest, fmt.Errorf("invalid scene config: %w", err)
		}
		return benchScene, warnings, http.StatusOK, nil
	}

	id := req.Scene
	if id == "" {
		id = "default"
	}
	benchScene := scene.NewSceneByID(id)
	if benchScene == nil {
		return nil, nil, http.StatusNotFound, fmt.Errorf("unknown scene: %s", id)
	}
	return benchScene, nil, http.StatusOK, nil
}

// params merges request overrides onto the configured trace defaults
func (s *Server) params(req *TraceRequest) tracer.Params {
	params := tracer.DefaultParams()
	params.MaxEvents = s.cfg.MaxEvents
	params.ParallelThreshold = s.cfg.ParallelThreshold
	if req.MaxEvents > 0 {
		params.MaxEvents = req.MaxEvents
	}
	if req.ParallelThreshold > 0 {
		params.ParallelThreshold = req.ParallelThreshold
	}
	return params
}

// pathToDTO converts one traced path to its wire form
func pathToDTO(path *core.RayPath) PathDTO {
	dto := PathDTO{
		Points:     make([]PointDTO, 0, len(path.Points)),
		Wavelength: path.Wavelength,
		Intensity:  path.Intensity,
		Truncated:  path.Truncated,
	}
	for _, p := range path.Points {
		dto.Points = append(dto.Points, PointDTO{X: p.X, Y: p.Y})
	}
	if path.Polarization != nil {
		i, q, u, v := path.Polarization.Stokes()
		dto.Polarization = &PolarizationDTO{
			Stokes:   [4]float64{i, q, u, v},
			Degree:   path.Polarization.DegreeOfPolarization(),
			AngleDeg: path.Polarization.LinearAngle() * 180 / math.Pi,
		}
	}
	return dto
}

// queryInt parses an integer query parameter with a default and bounds
func queryInt(r *http.Request, key string, defaultValue, min, max int) int {
	if value := r.URL.Query().Get(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed >= min && parsed <= max {
			return parsed
		}
	}
	return defaultValue
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
