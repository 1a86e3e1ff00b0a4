package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type ComplianceStatus string

const (
	ComplianceStatusPass   ComplianceStatus = "pass"
	ComplianceStatusReview ComplianceStatus = "review"
	ComplianceStatusFail   ComplianceStatus = "fail"
)

func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceStatusPass, ComplianceStatusReview, ComplianceStatusFail:
		return true
	}
	return false
}

// StageMetric is one stage's metric record as reported by the pipeline.
type StageMetric map[string]any

type WorkspaceRun struct {
	ID               int64            `json:"id"`
	WorkspaceID      int64            `json:"workspace_id"`
	TriggeredByID    *int64           `json:"triggered_by_id,omitempty"`
	RunID            string           `json:"run_id"`
	ExecutionID      *string          `json:"execution_id,omitempty"`
	IdeaTitle        string           `json:"idea_title"`
	IdeaSlug         string           `json:"idea_slug"`
	IdeaOneLiner     *string          `json:"idea_one_liner,omitempty"`
	IdeaText         string           `json:"idea_text"`
	ComplianceStatus ComplianceStatus `json:"compliance_status"`
	EvaluationScore  *decimal.Decimal `json:"evaluation_score,omitempty"`
	OverallQuality   *decimal.Decimal `json:"overall_quality,omitempty"`
	TotalCost        *decimal.Decimal `json:"total_cost,omitempty"`
	DurationMs       *int32           `json:"duration_ms,omitempty"`
	StageMetrics     []StageMetric    `json:"stage_metrics"`
	Telemetry        map[string]any   `json:"telemetry"`
	ComplianceReport map[string]any   `json:"compliance_report,omitempty"`
	EvaluationReport map[string]any   `json:"evaluation_report,omitempty"`
	PipelineConfig   map[string]any   `json:"pipeline_config,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// NewWorkspaceRun returns a run with a passing compliance status, no stage
// metrics and empty telemetry.
func NewWorkspaceRun(workspaceID int64, runID, ideaTitle, ideaSlug, ideaText string) *WorkspaceRun {
	return &WorkspaceRun{
		WorkspaceID:      workspaceID,
		RunID:            runID,
		IdeaTitle:        ideaTitle,
		IdeaSlug:         ideaSlug,
		IdeaText:         ideaText,
		ComplianceStatus: ComplianceStatusPass,
		StageMetrics:     []StageMetric{},
		Telemetry:        map[string]any{},
	}
}

// RecordStageMetrics replaces the stage metrics wholesale.
func (r *WorkspaceRun) RecordStageMetrics(metrics []StageMetric) {
	if metrics == nil {
		metrics = []StageMetric{}
	}
	r.StageMetrics = metrics
}

// SetEvaluation sets the score and report. Nil arguments leave the current
// value untouched.
func (r *WorkspaceRun) SetEvaluation(score *decimal.Decimal, report map[string]any) {
	if score != nil {
		r.EvaluationScore = RoundScore(score)
	}
	if report != nil {
		r.EvaluationReport = report
	}
}

// SetCompliance always sets the status; the report only when given.
func (r *WorkspaceRun) SetCompliance(status ComplianceStatus, report map[string]any) {
	r.ComplianceStatus = status
	if report != nil {
		r.ComplianceReport = report
	}
}

// Score columns are NUMERIC(5,2) and total cost NUMERIC(12,2); the bounds are
// exclusive and apply after rounding.
var (
	scoreLimit = decimal.New(1, 3)
	costLimit  = decimal.New(1, 10)
)

// ScoreInRange reports whether d fits a score column once rounded. Nil fits.
func ScoreInRange(d *decimal.Decimal) bool {
	return fitsLimit(d, scoreLimit)
}

// CostInRange reports whether d fits the total cost column once rounded.
func CostInRange(d *decimal.Decimal) bool {
	return fitsLimit(d, costLimit)
}

func fitsLimit(d *decimal.Decimal, limit decimal.Decimal) bool {
	if d == nil {
		return true
	}
	return d.Round(2).Abs().LessThan(limit)
}

// RoundScore rounds d to two fractional digits, matching the column scale.
func RoundScore(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	rounded := d.Round(2)
	return &rounded
}
