package queue

import (
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type EventType string

const (
	EventTypeRunCreated       EventType = "run.created"
	EventTypeRunStageMetrics  EventType = "run.stage_metrics_recorded"
	EventTypeRunEvaluationSet EventType = "run.evaluation_set"
	EventTypeRunComplianceSet EventType = "run.compliance_set"
)

const (
	DefaultRunEventStream       = "launchloom:run_events"
	defaultRunEventStreamMaxLen = 10000
)

// RunEvent announces a change to a recorded pipeline run. Consumers re-read
// the run through the API; the event carries identifiers only.
type RunEvent struct {
	Type              EventType
	WorkspaceID       int64
	WorkspacePublicID string
	RunID             string
	ComplianceStatus  string
	TraceID           string
	OccurredAt        time.Time
}

func (e RunEvent) values() map[string]any {
	values := map[string]any{
		"event_type":          string(e.Type),
		"workspace_id":        strconv.FormatInt(e.WorkspaceID, 10),
		"workspace_public_id": e.WorkspacePublicID,
		"run_id":              e.RunID,
		"occurred_at":         e.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if e.ComplianceStatus != "" {
		values["compliance_status"] = e.ComplianceStatus
	}
	if e.TraceID != "" {
		values["trace_id"] = e.TraceID
	}
	return values
}

// ParseRunEvent decodes a stream entry written by Publish.
func ParseRunEvent(msg redis.XMessage) (RunEvent, error) {
	eventType, ok := msg.Values["event_type"].(string)
	if !ok || eventType == "" {
		return RunEvent{}, fmt.Errorf("message %s: missing event_type", msg.ID)
	}
	runID, ok := msg.Values["run_id"].(string)
	if !ok || runID == "" {
		return RunEvent{}, fmt.Errorf("message %s: missing run_id", msg.ID)
	}

	event := RunEvent{Type: EventType(eventType), RunID: runID}

	if raw, ok := msg.Values["workspace_id"].(string); ok {
		workspaceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return RunEvent{}, fmt.Errorf("message %s: parsing workspace_id: %w", msg.ID, err)
		}
		event.WorkspaceID = workspaceID
	}
	if raw, ok := msg.Values["occurred_at"].(string); ok {
		occurredAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return RunEvent{}, fmt.Errorf("message %s: parsing occurred_at: %w", msg.ID, err)
		}
		event.OccurredAt = occurredAt
	}
	event.WorkspacePublicID, _ = msg.Values["workspace_public_id"].(string)
	event.ComplianceStatus, _ = msg.Values["compliance_status"].(string)
	event.TraceID, _ = msg.Values["trace_id"].(string)

	return event, nil
}
