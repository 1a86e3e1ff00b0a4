package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"launchloom.app/studio/internal/model"
)

func toTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func fromTimestamptz(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d.Round(2), Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// encodeJSON marshals v for a NOT NULL json column, writing empty when v is nil.
func encodeJSON(v any, isNil bool, empty string) ([]byte, error) {
	if isNil {
		return []byte(empty), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json column: %w", err)
	}
	return b, nil
}

// encodeNullableJSON marshals an optional object, mapping nil to SQL NULL.
func encodeNullableJSON(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding json column: %w", err)
	}
	return b, nil
}

// decodeObject reads a json object column. A value that does not decode is
// logged and read as absent.
func decodeObject(column string, b []byte) map[string]any {
	if len(b) == 0 {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		slog.Warn("failed to decode json column", "column", column, "error", err)
		return nil
	}
	return m
}

// decodeStageMetrics reads the stage_metrics column, falling back to an
// empty list when it is missing or does not decode.
func decodeStageMetrics(runID string, b []byte) []model.StageMetric {
	metrics := []model.StageMetric{}
	if len(b) == 0 {
		return metrics
	}
	if err := json.Unmarshal(b, &metrics); err != nil {
		slog.Warn("failed to decode json column", "column", "stage_metrics", "run_id", runID, "error", err)
		return []model.StageMetric{}
	}
	if metrics == nil {
		metrics = []model.StageMetric{}
	}
	return metrics
}
