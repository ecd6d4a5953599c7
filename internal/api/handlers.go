package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/MatthewKim323/HimAI-v2/internal/charts"
	"github.com/MatthewKim323/HimAI-v2/internal/db"
	"github.com/MatthewKim323/HimAI-v2/internal/exercise"
	"github.com/MatthewKim323/HimAI-v2/internal/pose"
	"github.com/MatthewKim323/HimAI-v2/internal/tension"
)

type analyzeRequest struct {
	Frames   []pose.Frame `json:"frames"`
	Exercise string       `json:"exercise"`
	Joint    string       `json:"joint"`
	Side     string       `json:"side"`
}

type analyzeResponse struct {
	tension.Report
	AnalysisID         string `json:"analysis_id,omitempty"`
	ForceVelocityGraph string `json:"force_velocity_graph,omitempty"`
	VelocityTimeline   string `json:"velocity_timeline,omitempty"`
	RepComparison      string `json:"rep_comparison,omitempty"`
}

// handleAnalyze runs the pipeline over a posted landmark stream. Streams
// that yield no reps still return 200 with success=false; only malformed
// requests are client errors.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var joint pose.Joint
	if req.Joint != "" {
		var err error
		if joint, err = pose.ParseJoint(req.Joint); err != nil {
			s.writeJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	side, err := pose.ParseSide(req.Side)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.analyzer.Analyze(req.Frames, req.Exercise, joint, side)
	resp := analyzeResponse{Report: result.Report}

	if result.Report.Success {
		resp.ForceVelocityGraph = renderDataURI(func() ([]byte, error) {
			return charts.ForceVelocityPNG(result.Report.Reps)
		})
		resp.VelocityTimeline = renderDataURI(func() ([]byte, error) {
			return charts.VelocityTimelinePNG(result.Velocities, result.Report.Reps)
		})
		resp.RepComparison = renderDataURI(func() ([]byte, error) {
			return charts.RepComparisonPNG(result.Report.Reps)
		})

		if s.db != nil {
			id, err := s.db.RecordAnalysis(result.Report)
			if err != nil {
				log.Printf("failed to store analysis: %v", err)
			} else {
				resp.AnalysisID = id
			}
		}
	}

	s.writeJSON(w, resp)
}

// renderDataURI renders a chart, degrading to an empty string on failure; a
// broken picture should not fail the whole analysis response.
func renderDataURI(render func() ([]byte, error)) string {
	png, err := render()
	if err != nil {
		log.Printf("chart rendering failed: %v", err)
		return ""
	}
	return charts.DataURI(png)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSON(w, map[string]interface{}{"exercises": exercise.Catalog()})
}

func (s *Server) handleExerciseDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/exercises/")
	if name == "" || strings.Contains(name, "/") {
		s.writeJSONError(w, http.StatusNotFound, "Exercise not found")
		return
	}
	entry, ok := exercise.CatalogEntryFor(name)
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, "Exercise not found")
		return
	}
	s.writeJSON(w, entry)
}

func (s *Server) handleListJoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"joints": exercise.JointCatalog(),
		"sides":  exercise.Sides(),
	})
}

func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if s.db == nil {
		s.writeJSONError(w, http.StatusServiceUnavailable, "Persistence is disabled")
		return
	}

	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			s.writeJSONError(w, http.StatusBadRequest, "Invalid 'limit' parameter")
			return
		}
		limit = v
	}

	analyses, err := s.db.ListAnalyses(limit)
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to retrieve analyses")
		return
	}
	s.writeJSON(w, map[string]interface{}{"analyses": analyses})
}

// handleAnalysisSubtree routes /api/analyses/{id} and
// /api/analyses/{id}/charts/{chart}.
func (s *Server) handleAnalysisSubtree(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if s.db == nil {
		s.writeJSONError(w, http.StatusServiceUnavailable, "Persistence is disabled")
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/analyses/")
	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 1 && parts[0] != "":
		s.handleGetAnalysis(w, parts[0])
	case len(parts) == 3 && parts[1] == "charts":
		s.handleAnalysisChart(w, parts[0], parts[2])
	default:
		s.writeJSONError(w, http.StatusNotFound, "Not found")
	}
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, id string) {
	analysis, reps, err := s.db.GetAnalysis(id)
	if errors.Is(err, db.ErrAnalysisNotFound) {
		s.writeJSONError(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to load analysis")
		return
	}
	s.writeJSON(w, map[string]interface{}{
		"analysis": analysis,
		"reps":     reps,
	})
}

func (s *Server) handleAnalysisChart(w http.ResponseWriter, id, chart string) {
	analysis, reps, err := s.db.GetAnalysis(id)
	if errors.Is(err, db.ErrAnalysisNotFound) {
		s.writeJSONError(w, http.StatusNotFound, "Analysis not found")
		return
	}
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to load analysis")
		return
	}

	title := analysis.Exercise + " / " + analysis.CreatedAt.Format("2006-01-02 15:04")
	var page []byte
	switch chart {
	case "reps":
		page, err = charts.RepComparisonHTML(title, reps)
	case "force-velocity":
		page, err = charts.ForceVelocityHTML(title, reps)
	default:
		s.writeJSONError(w, http.StatusNotFound, "Unknown chart")
		return
	}
	if err != nil {
		s.writeJSONError(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}
