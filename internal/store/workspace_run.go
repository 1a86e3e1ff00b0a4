package store

import (
	"context"

	"launchloom.app/studio/core/db/sqlc"
	"launchloom.app/studio/internal/model"
)

type workspaceRunStore struct {
	queries *sqlc.Queries
}

func newWorkspaceRunStore(queries *sqlc.Queries) WorkspaceRunStore {
	return &workspaceRunStore{queries: queries}
}

func (s *workspaceRunStore) Create(ctx context.Context, run *model.WorkspaceRun) error {
	stageMetrics, err := encodeJSON(run.StageMetrics, run.StageMetrics == nil, "[]")
	if err != nil {
		return err
	}
	telemetry, err := encodeJSON(run.Telemetry, run.Telemetry == nil, "{}")
	if err != nil {
		return err
	}
	complianceReport, err := encodeNullableJSON(run.ComplianceReport)
	if err != nil {
		return err
	}
	evaluationReport, err := encodeNullableJSON(run.EvaluationReport)
	if err != nil {
		return err
	}
	pipelineConfig, err := encodeNullableJSON(run.PipelineConfig)
	if err != nil {
		return err
	}

	row, err := s.queries.CreateWorkspaceRun(ctx, sqlc.CreateWorkspaceRunParams{
		ID:               run.ID,
		WorkspaceID:      run.WorkspaceID,
		TriggeredByID:    run.TriggeredByID,
		RunID:            run.RunID,
		ExecutionID:      run.ExecutionID,
		IdeaTitle:        run.IdeaTitle,
		IdeaSlug:         run.IdeaSlug,
		IdeaOneLiner:     run.IdeaOneLiner,
		IdeaText:         run.IdeaText,
		ComplianceStatus: sqlc.ComplianceStatus(run.ComplianceStatus),
		EvaluationScore:  toNullDecimal(run.EvaluationScore),
		OverallQuality:   toNullDecimal(run.OverallQuality),
		TotalCost:        toNullDecimal(run.TotalCost),
		DurationMs:       run.DurationMs,
		StageMetrics:     stageMetrics,
		Telemetry:        telemetry,
		ComplianceReport: complianceReport,
		EvaluationReport: evaluationReport,
		PipelineConfig:   pipelineConfig,
	})
	if err != nil {
		return translate(err)
	}
	*run = *toWorkspaceRunModel(row)
	return nil
}

func (s *workspaceRunStore) GetByIdentifier(ctx context.Context, workspaceIdent, runID string) (*model.WorkspaceRun, error) {
	row, err := s.queries.GetWorkspaceRunByIdentifier(ctx, sqlc.GetWorkspaceRunByIdentifierParams{
		Identifier: workspaceIdent,
		RunID:      runID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toWorkspaceRunModel(row), nil
}

func (s *workspaceRunStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit, offset int32) ([]model.WorkspaceRun, error) {
	rows, err := s.queries.ListWorkspaceRuns(ctx, sqlc.ListWorkspaceRunsParams{
		WorkspaceID: workspaceID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, err
	}
	return toWorkspaceRunModels(rows), nil
}

func (s *workspaceRunStore) CountByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.CountWorkspaceRuns(ctx, workspaceID)
}

func (s *workspaceRunStore) UpdateResults(ctx context.Context, run *model.WorkspaceRun) error {
	stageMetrics, err := encodeJSON(run.StageMetrics, run.StageMetrics == nil, "[]")
	if err != nil {
		return err
	}
	complianceReport, err := encodeNullableJSON(run.ComplianceReport)
	if err != nil {
		return err
	}
	evaluationReport, err := encodeNullableJSON(run.EvaluationReport)
	if err != nil {
		return err
	}

	row, err := s.queries.UpdateWorkspaceRunResults(ctx, sqlc.UpdateWorkspaceRunResultsParams{
		ID:               run.ID,
		ComplianceStatus: sqlc.ComplianceStatus(run.ComplianceStatus),
		EvaluationScore:  toNullDecimal(run.EvaluationScore),
		StageMetrics:     stageMetrics,
		ComplianceReport: complianceReport,
		EvaluationReport: evaluationReport,
	})
	if err != nil {
		return translate(err)
	}
	*run = *toWorkspaceRunModel(row)
	return nil
}

func toWorkspaceRunModel(row sqlc.WorkspaceRun) *model.WorkspaceRun {
	stageMetrics := decodeStageMetrics(row.RunID, row.StageMetrics)
	telemetry := decodeObject("telemetry", row.Telemetry)
	if telemetry == nil {
		telemetry = map[string]any{}
	}

	return &model.WorkspaceRun{
		ID:               row.ID,
		WorkspaceID:      row.WorkspaceID,
		TriggeredByID:    row.TriggeredByID,
		RunID:            row.RunID,
		ExecutionID:      row.ExecutionID,
		IdeaTitle:        row.IdeaTitle,
		IdeaSlug:         row.IdeaSlug,
		IdeaOneLiner:     row.IdeaOneLiner,
		IdeaText:         row.IdeaText,
		ComplianceStatus: model.ComplianceStatus(row.ComplianceStatus),
		EvaluationScore:  fromNullDecimal(row.EvaluationScore),
		OverallQuality:   fromNullDecimal(row.OverallQuality),
		TotalCost:        fromNullDecimal(row.TotalCost),
		DurationMs:       row.DurationMs,
		StageMetrics:     stageMetrics,
		Telemetry:        telemetry,
		ComplianceReport: decodeObject("compliance_report", row.ComplianceReport),
		EvaluationReport: decodeObject("evaluation_report", row.EvaluationReport),
		PipelineConfig:   decodeObject("pipeline_config", row.PipelineConfig),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}

func toWorkspaceRunModels(rows []sqlc.WorkspaceRun) []model.WorkspaceRun {
	result := make([]model.WorkspaceRun, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceRunModel(row)
	}
	return result
}
