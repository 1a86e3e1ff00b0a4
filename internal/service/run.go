package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"

	"launchloom.app/studio/common/id"
	"launchloom.app/studio/common/logger"
	"launchloom.app/studio/internal/model"
	"launchloom.app/studio/internal/queue"
	"launchloom.app/studio/internal/store"
)

type CreateRunInput struct {
	RunID            string
	ExecutionID      *string
	TriggeredByID    *int64
	IdeaTitle        string
	IdeaSlug         string
	IdeaOneLiner     *string
	IdeaText         string
	ComplianceStatus model.ComplianceStatus
	EvaluationScore  *decimal.Decimal
	OverallQuality   *decimal.Decimal
	TotalCost        *decimal.Decimal
	DurationMs       *int32
	StageMetrics     []model.StageMetric
	Telemetry        map[string]any
	ComplianceReport map[string]any
	EvaluationReport map[string]any
	PipelineConfig   map[string]any
}

type RunService interface {
	Create(ctx context.Context, workspaceIdent string, input CreateRunInput) (*model.WorkspaceRun, error)
	// Get matches the workspace by public id or slug together with the run id.
	Get(ctx context.Context, workspaceIdent, runID string) (*model.WorkspaceRun, error)
	List(ctx context.Context, workspaceIdent string, limit, offset int32) ([]model.WorkspaceRun, int64, error)
	RecordStageMetrics(ctx context.Context, workspaceIdent, runID string, metrics []model.StageMetric) (*model.WorkspaceRun, error)
	SetEvaluation(ctx context.Context, workspaceIdent, runID string, score *decimal.Decimal, report map[string]any) (*model.WorkspaceRun, error)
	SetCompliance(ctx context.Context, workspaceIdent, runID string, status model.ComplianceStatus, report map[string]any) (*model.WorkspaceRun, error)
}

type runService struct {
	workspaces store.WorkspaceStore
	runs       store.WorkspaceRunStore
	events     queue.Producer
	now        func() time.Time
}

// NewRunService builds the run service. events may be nil, in which case no
// run events are published.
func NewRunService(workspaces store.WorkspaceStore, runs store.WorkspaceRunStore, events queue.Producer) RunService {
	return &runService{workspaces: workspaces, runs: runs, events: events, now: time.Now}
}

func (s *runService) Create(ctx context.Context, workspaceIdent string, input CreateRunInput) (*model.WorkspaceRun, error) {
	sc := logger.StartSpan(ctx, "service.run.create")
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{
		RunID:     logger.Ptr(input.RunID),
		Component: "launchloom.service.run",
	})

	if !model.ScoreInRange(input.EvaluationScore) || !model.ScoreInRange(input.OverallQuality) || !model.CostInRange(input.TotalCost) {
		return nil, ErrValueOutOfRange
	}

	ws, err := resolveWorkspace(ctx, s.workspaces, workspaceIdent)
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}

	run := model.NewWorkspaceRun(ws.ID, input.RunID, input.IdeaTitle, input.IdeaSlug, input.IdeaText)
	run.ID = id.New()
	run.ExecutionID = input.ExecutionID
	run.TriggeredByID = input.TriggeredByID
	run.IdeaOneLiner = input.IdeaOneLiner
	if input.ComplianceStatus != "" {
		run.ComplianceStatus = input.ComplianceStatus
	}
	run.EvaluationScore = model.RoundScore(input.EvaluationScore)
	run.OverallQuality = model.RoundScore(input.OverallQuality)
	run.TotalCost = model.RoundScore(input.TotalCost)
	run.DurationMs = input.DurationMs
	if input.StageMetrics != nil {
		run.RecordStageMetrics(input.StageMetrics)
	}
	if input.Telemetry != nil {
		run.Telemetry = input.Telemetry
	}
	run.ComplianceReport = input.ComplianceReport
	run.EvaluationReport = input.EvaluationReport
	run.PipelineConfig = input.PipelineConfig

	if err := s.runs.Create(ctx, run); err != nil {
		sc.RecordError(err)
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrRunConflict
		}
		return nil, fmt.Errorf("creating run: %w", err)
	}

	slog.InfoContext(ctx, "run recorded",
		"workspace_id", ws.ID,
		"compliance_status", run.ComplianceStatus,
	)

	s.publish(ctx, queue.EventTypeRunCreated, ws, run)

	return run, nil
}

func (s *runService) Get(ctx context.Context, workspaceIdent, runID string) (*model.WorkspaceRun, error) {
	run, err := s.runs.GetByIdentifier(ctx, workspaceIdent, runID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("getting run: %w", err)
	}
	return run, nil
}

func (s *runService) List(ctx context.Context, workspaceIdent string, limit, offset int32) ([]model.WorkspaceRun, int64, error) {
	ws, err := resolveWorkspace(ctx, s.workspaces, workspaceIdent)
	if err != nil {
		return nil, 0, err
	}
	items, err := s.runs.ListByWorkspace(ctx, ws.ID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing runs: %w", err)
	}
	total, err := s.runs.CountByWorkspace(ctx, ws.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("counting runs: %w", err)
	}
	return items, total, nil
}

func (s *runService) RecordStageMetrics(ctx context.Context, workspaceIdent, runID string, metrics []model.StageMetric) (*model.WorkspaceRun, error) {
	return s.mutate(ctx, workspaceIdent, runID, queue.EventTypeRunStageMetrics, func(run *model.WorkspaceRun) {
		run.RecordStageMetrics(metrics)
	})
}

func (s *runService) SetEvaluation(ctx context.Context, workspaceIdent, runID string, score *decimal.Decimal, report map[string]any) (*model.WorkspaceRun, error) {
	if !model.ScoreInRange(score) {
		return nil, ErrValueOutOfRange
	}
	return s.mutate(ctx, workspaceIdent, runID, queue.EventTypeRunEvaluationSet, func(run *model.WorkspaceRun) {
		run.SetEvaluation(score, report)
	})
}

func (s *runService) SetCompliance(ctx context.Context, workspaceIdent, runID string, status model.ComplianceStatus, report map[string]any) (*model.WorkspaceRun, error) {
	return s.mutate(ctx, workspaceIdent, runID, queue.EventTypeRunComplianceSet, func(run *model.WorkspaceRun) {
		run.SetCompliance(status, report)
	})
}

// mutate loads the run, applies fn and persists the result columns.
func (s *runService) mutate(ctx context.Context, workspaceIdent, runID string, event queue.EventType, fn func(run *model.WorkspaceRun)) (*model.WorkspaceRun, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{RunID: logger.Ptr(runID)})

	// Events carry the workspace public id, which the run row does not hold.
	var ws *model.Workspace
	if s.events != nil {
		var err error
		if ws, err = resolveWorkspace(ctx, s.workspaces, workspaceIdent); err != nil {
			return nil, err
		}
	}

	run, err := s.Get(ctx, workspaceIdent, runID)
	if err != nil {
		return nil, err
	}
	fn(run)
	if err := s.runs.UpdateResults(ctx, run); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("updating run: %w", err)
	}

	slog.DebugContext(ctx, "run results updated", "compliance_status", run.ComplianceStatus)

	s.publish(ctx, event, ws, run)

	return run, nil
}

// publish announces a run change. The write already succeeded, so a failed
// publish is logged and dropped.
func (s *runService) publish(ctx context.Context, eventType queue.EventType, ws *model.Workspace, run *model.WorkspaceRun) {
	if s.events == nil {
		return
	}

	event := queue.RunEvent{
		Type:             eventType,
		WorkspaceID:      run.WorkspaceID,
		RunID:            run.RunID,
		ComplianceStatus: string(run.ComplianceStatus),
		OccurredAt:       s.now(),
	}
	if ws != nil {
		event.WorkspacePublicID = ws.PublicID
	}
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.HasTraceID() {
		event.TraceID = spanCtx.TraceID().String()
	}

	if err := s.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish run event", "event_type", eventType, "error", err)
	}
}
