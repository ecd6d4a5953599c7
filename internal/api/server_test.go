package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewKim323/HimAI-v2/internal/db"
	"github.com/MatthewKim323/HimAI-v2/internal/exercise"
	"github.com/MatthewKim323/HimAI-v2/internal/pose"
)

func testServer(t *testing.T) (*Server, *db.DB) {
	t.Helper()
	database, err := db.NewDB(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	registry, err := exercise.NewRegistry()
	require.NoError(t, err)
	return NewServer(database, registry), database
}

// curlFrames builds a landmark stream with rep-shaped elbow speed ramps.
func curlFrames(cycles int) []pose.Frame {
	var speeds []float64
	for i := 0; i < cycles; i++ {
		speeds = append(speeds, 0, 0, 0)
		speeds = append(speeds, 0.04, 0.08, 0.12, 0.16, 0.20, 0.16, 0.12, 0.08, 0.04)
	}
	speeds = append(speeds, 0, 0, 0)

	const dt = 0.2
	frames := make([]pose.Frame, 0, len(speeds)+1)
	y := 0.0
	frames = append(frames, pose.Frame{
		Frame:     0,
		Landmarks: map[pose.Joint][]pose.Position{pose.JointElbow: {{Y: y}}},
	})
	for i, speed := range speeds {
		y += speed * dt
		frames = append(frames, pose.Frame{
			Frame:     i + 1,
			Timestamp: float64(i+1) * dt,
			Landmarks: map[pose.Joint][]pose.Position{pose.JointElbow: {{Y: y}}},
		})
	}
	return frames
}

func postAnalyze(t *testing.T, mux *http.ServeMux, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	t.Parallel()
	server, database := testServer(t)
	mux := server.ServeMux()

	t.Run("full analysis", func(t *testing.T) {
		rec := postAnalyze(t, mux, map[string]interface{}{
			"frames":   curlFrames(2),
			"exercise": "dumbbell_bicep_curl",
			"joint":    "elbow",
			"side":     "left",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success            bool   `json:"success"`
			RepCount           int    `json:"rep_count"`
			AnalysisID         string `json:"analysis_id"`
			ForceVelocityGraph string `json:"force_velocity_graph"`
			VelocityTimeline   string `json:"velocity_timeline"`
			RepComparison      string `json:"rep_comparison"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.RepCount)
		require.NotEmpty(t, resp.AnalysisID)
		assert.True(t, strings.HasPrefix(resp.ForceVelocityGraph, "data:image/png;base64,"))
		assert.True(t, strings.HasPrefix(resp.VelocityTimeline, "data:image/png;base64,"))
		assert.True(t, strings.HasPrefix(resp.RepComparison, "data:image/png;base64,"))

		stored, reps, err := database.GetAnalysis(resp.AnalysisID)
		require.NoError(t, err)
		assert.Equal(t, "dumbbell_bicep_curl", stored.Exercise)
		assert.Len(t, reps, 2)
	})

	t.Run("no reps is success false not an error", func(t *testing.T) {
		rec := postAnalyze(t, mux, map[string]interface{}{
			"frames": curlFrames(0),
			"joint":  "elbow",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success    bool   `json:"success"`
			Error      string `json:"error"`
			AnalysisID string `json:"analysis_id"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
		assert.Empty(t, resp.AnalysisID)
	})

	t.Run("unknown joint rejected", func(t *testing.T) {
		rec := postAnalyze(t, mux, map[string]interface{}{
			"frames": curlFrames(1),
			"joint":  "femur",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown side rejected", func(t *testing.T) {
		rec := postAnalyze(t, mux, map[string]interface{}{
			"frames": curlFrames(1),
			"side":   "middle",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader("{nope"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get not allowed", func(t *testing.T) {
		rec := get(mux, "/api/analyze")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	t.Parallel()
	server, _ := testServer(t)
	mux := server.ServeMux()

	t.Run("exercise list", func(t *testing.T) {
		rec := get(mux, "/api/exercises")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Exercises []exercise.CatalogEntry `json:"exercises"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Exercises)
	})

	t.Run("exercise detail with tips", func(t *testing.T) {
		rec := get(mux, "/api/exercises/lat_pulldown")
		require.Equal(t, http.StatusOK, rec.Code)
		var entry exercise.CatalogEntry
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
		assert.Equal(t, "Lat Pulldown", entry.DisplayName)
		assert.NotEmpty(t, entry.Tips)
	})

	t.Run("unknown exercise 404", func(t *testing.T) {
		rec := get(mux, "/api/exercises/yodeling")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("joints and sides", func(t *testing.T) {
		rec := get(mux, "/api/joints")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Joints []exercise.JointInfo `json:"joints"`
			Sides  []pose.Side          `json:"sides"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Joints, 6)
		assert.Equal(t, []pose.Side{pose.SideLeft, pose.SideRight}, resp.Sides)
	})
}

func TestStoredAnalysisEndpoints(t *testing.T) {
	t.Parallel()
	server, _ := testServer(t)
	mux := server.ServeMux()

	rec := postAnalyze(t, mux, map[string]interface{}{
		"frames":   curlFrames(2),
		"exercise": "dumbbell_bicep_curl",
		"joint":    "elbow",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		AnalysisID string `json:"analysis_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.AnalysisID)

	t.Run("list", func(t *testing.T) {
		rec := get(mux, "/api/analyses")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Analyses []db.Analysis `json:"analyses"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Analyses, 1)
		assert.Equal(t, created.AnalysisID, resp.Analyses[0].ID)
	})

	t.Run("invalid limit", func(t *testing.T) {
		rec := get(mux, "/api/analyses?limit=bogus")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get one", func(t *testing.T) {
		rec := get(mux, "/api/analyses/"+created.AnalysisID)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Analysis db.Analysis `json:"analysis"`
			Reps     []struct {
				RepNumber int `json:"rep_number"`
			} `json:"reps"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.AnalysisID, resp.Analysis.ID)
		assert.Len(t, resp.Reps, 2)
	})

	t.Run("missing analysis 404", func(t *testing.T) {
		rec := get(mux, "/api/analyses/definitely-not-an-id")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rep comparison chart page", func(t *testing.T) {
		rec := get(mux, "/api/analyses/"+created.AnalysisID+"/charts/reps")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Per-Rep Comparison")
	})

	t.Run("force velocity chart page", func(t *testing.T) {
		rec := get(mux, "/api/analyses/"+created.AnalysisID+"/charts/force-velocity")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Force-Velocity Profile")
	})

	t.Run("unknown chart 404", func(t *testing.T) {
		rec := get(mux, "/api/analyses/"+created.AnalysisID+"/charts/pie")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()
	server, _ := testServer(t)
	handler := LoggingMiddleware(server.ServeMux())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/joints", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
