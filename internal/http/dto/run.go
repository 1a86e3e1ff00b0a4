package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/service"
)

type CreateRunRequest struct {
	RunID            string                 `json:"run_id" binding:"required,min=1,max=64"`
	ExecutionID      *string                `json:"execution_id,omitempty" binding:"omitempty,max=64"`
	TriggeredByID    *int64                 `json:"triggered_by_id,omitempty,string"`
	IdeaTitle        string                 `json:"idea_title" binding:"required,min=1,max=255"`
	IdeaSlug         string                 `json:"idea_slug" binding:"required,min=1,max=255"`
	IdeaOneLiner     *string                `json:"idea_one_liner,omitempty" binding:"omitempty,max=500"`
	IdeaText         string                 `json:"idea_text" binding:"required"`
	ComplianceStatus model.ComplianceStatus `json:"compliance_status,omitempty" binding:"omitempty,compliance_status"`
	EvaluationScore  *decimal.Decimal       `json:"evaluation_score,omitempty"`
	OverallQuality   *decimal.Decimal       `json:"overall_quality,omitempty"`
	TotalCost        *decimal.Decimal       `json:"total_cost,omitempty"`
	DurationMs       *int32                 `json:"duration_ms,omitempty" binding:"omitempty,min=0"`
	StageMetrics     []model.StageMetric    `json:"stage_metrics,omitempty"`
	Telemetry        map[string]any         `json:"telemetry,omitempty"`
	ComplianceReport map[string]any         `json:"compliance_report,omitempty"`
	EvaluationReport map[string]any         `json:"evaluation_report,omitempty"`
	PipelineConfig   map[string]any         `json:"pipeline_config,omitempty"`
}

// ToInput converts the request, defaulting the trigger to fallbackUser
// when the body does not name one.
func (r CreateRunRequest) ToInput(fallbackUser *int64) service.CreateRunInput {
	triggeredBy := r.TriggeredByID
	if triggeredBy == nil {
		triggeredBy = fallbackUser
	}
	return service.CreateRunInput{
		RunID:            r.RunID,
		ExecutionID:      r.ExecutionID,
		TriggeredByID:    triggeredBy,
		IdeaTitle:        r.IdeaTitle,
		IdeaSlug:         r.IdeaSlug,
		IdeaOneLiner:     r.IdeaOneLiner,
		IdeaText:         r.IdeaText,
		ComplianceStatus: r.ComplianceStatus,
		EvaluationScore:  r.EvaluationScore,
		OverallQuality:   r.OverallQuality,
		TotalCost:        r.TotalCost,
		DurationMs:       r.DurationMs,
		StageMetrics:     r.StageMetrics,
		Telemetry:        r.Telemetry,
		ComplianceReport: r.ComplianceReport,
		EvaluationReport: r.EvaluationReport,
		PipelineConfig:   r.PipelineConfig,
	}
}

type StageMetricsRequest struct {
	StageMetrics []model.StageMetric `json:"stage_metrics" binding:"required"`
}

type EvaluationRequest struct {
	EvaluationScore  *decimal.Decimal `json:"evaluation_score,omitempty"`
	EvaluationReport map[string]any   `json:"evaluation_report,omitempty"`
}

type ComplianceRequest struct {
	ComplianceStatus model.ComplianceStatus `json:"compliance_status" binding:"required,compliance_status"`
	ComplianceReport map[string]any         `json:"compliance_report,omitempty"`
}

type RunResponse struct {
	ID               int64                  `json:"id,string"`
	WorkspaceID      int64                  `json:"workspace_id,string"`
	RunID            string                 `json:"run_id"`
	ExecutionID      *string                `json:"execution_id"`
	TriggeredByID    *int64                 `json:"triggered_by_id,omitempty,string"`
	IdeaTitle        string                 `json:"idea_title"`
	IdeaSlug         string                 `json:"idea_slug"`
	IdeaOneLiner     *string                `json:"idea_one_liner"`
	IdeaText         string                 `json:"idea_text"`
	ComplianceStatus model.ComplianceStatus `json:"compliance_status"`
	EvaluationScore  *float64               `json:"evaluation_score"`
	OverallQuality   *float64               `json:"overall_quality"`
	TotalCost        *float64               `json:"total_cost"`
	DurationMs       *int32                 `json:"duration_ms"`
	StageMetrics     []model.StageMetric    `json:"stage_metrics"`
	Telemetry        map[string]any         `json:"telemetry"`
	ComplianceReport map[string]any         `json:"compliance_report"`
	EvaluationReport map[string]any         `json:"evaluation_report"`
	PipelineConfig   map[string]any         `json:"pipeline_config"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

func ToRunResponse(r model.WorkspaceRun) RunResponse {
	metrics := r.StageMetrics
	if metrics == nil {
		metrics = []model.StageMetric{}
	}
	telemetry := r.Telemetry
	if telemetry == nil {
		telemetry = map[string]any{}
	}
	return RunResponse{
		ID:               r.ID,
		WorkspaceID:      r.WorkspaceID,
		RunID:            r.RunID,
		ExecutionID:      r.ExecutionID,
		TriggeredByID:    r.TriggeredByID,
		IdeaTitle:        r.IdeaTitle,
		IdeaSlug:         r.IdeaSlug,
		IdeaOneLiner:     r.IdeaOneLiner,
		IdeaText:         r.IdeaText,
		ComplianceStatus: r.ComplianceStatus,
		EvaluationScore:  toFloat(r.EvaluationScore),
		OverallQuality:   toFloat(r.OverallQuality),
		TotalCost:        toFloat(r.TotalCost),
		DurationMs:       r.DurationMs,
		StageMetrics:     metrics,
		Telemetry:        telemetry,
		ComplianceReport: r.ComplianceReport,
		EvaluationReport: r.EvaluationReport,
		PipelineConfig:   r.PipelineConfig,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
