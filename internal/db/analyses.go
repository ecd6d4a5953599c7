package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MatthewKim323/HimAI-v2/internal/tension"
)

// ErrAnalysisNotFound is returned when an analysis id does not exist.
var ErrAnalysisNotFound = errors.New("analysis not found")

// Analysis is one stored analysis header; the per-rep rows live in
// analysis_reps and are loaded separately.
type Analysis struct {
	ID            string    `json:"id"`
	Exercise      string    `json:"exercise"`
	Joint         string    `json:"joint"`
	Side          string    `json:"side"`
	Success       bool      `json:"success"`
	TensionRating float64   `json:"tension_rating"`
	RepCount      int       `json:"rep_count"`
	Summary       string    `json:"analysis_summary"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordAnalysis stores a completed report and its reps in one transaction,
// returning the new analysis id.
func (db *DB) RecordAnalysis(report tension.Report) (string, error) {
	id := uuid.NewString()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO analyses (id, exercise, joint, side, success, tension_rating, rep_count, analysis_summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, report.Exercise, string(report.Joint), string(report.Side),
		report.Success, report.TensionRating, report.RepCount, report.AnalysisSummary)
	if err != nil {
		return "", fmt.Errorf("failed to insert analysis: %w", err)
	}

	for _, rep := range report.Reps {
		var score sql.NullFloat64
		if rep.TensionScore != nil {
			score = sql.NullFloat64{Float64: *rep.TensionScore, Valid: true}
		}
		_, err = tx.Exec(`
			INSERT INTO analysis_reps (analysis_id, rep_number, start_frame, end_frame,
				start_time, end_time, duration, avg_velocity, max_velocity, min_velocity,
				tension_score, rep_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, rep.RepNumber, rep.StartFrame, rep.EndFrame,
			rep.StartTime, rep.EndTime, rep.Duration,
			rep.AvgVelocity, rep.MaxVelocity, rep.MinVelocity,
			score, rep.RepType)
		if err != nil {
			return "", fmt.Errorf("failed to insert rep %d: %w", rep.RepNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit analysis: %w", err)
	}
	return id, nil
}

// ListAnalyses returns stored analysis headers, newest first.
func (db *DB) ListAnalyses(limit int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
		SELECT id, exercise, joint, side, success, tension_rating, rep_count, analysis_summary, created_at
		FROM analyses ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	analyses := []Analysis{}
	for rows.Next() {
		var a Analysis
		if err := rows.Scan(&a.ID, &a.Exercise, &a.Joint, &a.Side, &a.Success,
			&a.TensionRating, &a.RepCount, &a.Summary, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}

// GetAnalysis loads one stored analysis and its reps.
func (db *DB) GetAnalysis(id string) (Analysis, []tension.Rep, error) {
	var a Analysis
	err := db.QueryRow(`
		SELECT id, exercise, joint, side, success, tension_rating, rep_count, analysis_summary, created_at
		FROM analyses WHERE id = ?`, id).
		Scan(&a.ID, &a.Exercise, &a.Joint, &a.Side, &a.Success,
			&a.TensionRating, &a.RepCount, &a.Summary, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Analysis{}, nil, ErrAnalysisNotFound
	}
	if err != nil {
		return Analysis{}, nil, fmt.Errorf("failed to load analysis %s: %w", id, err)
	}

	rows, err := db.Query(`
		SELECT rep_number, start_frame, end_frame, start_time, end_time, duration,
			avg_velocity, max_velocity, min_velocity, tension_score, rep_type
		FROM analysis_reps WHERE analysis_id = ? ORDER BY rep_number`, id)
	if err != nil {
		return Analysis{}, nil, fmt.Errorf("failed to query reps for %s: %w", id, err)
	}
	defer rows.Close()

	var reps []tension.Rep
	for rows.Next() {
		var rep tension.Rep
		var score sql.NullFloat64
		if err := rows.Scan(&rep.RepNumber, &rep.StartFrame, &rep.EndFrame,
			&rep.StartTime, &rep.EndTime, &rep.Duration,
			&rep.AvgVelocity, &rep.MaxVelocity, &rep.MinVelocity,
			&score, &rep.RepType); err != nil {
			return Analysis{}, nil, fmt.Errorf("failed to scan rep: %w", err)
		}
		if score.Valid {
			v := score.Float64
			rep.TensionScore = &v
		}
		reps = append(reps, rep)
	}
	return a, reps, rows.Err()
}
