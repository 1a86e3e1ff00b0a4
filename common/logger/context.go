package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields holds structured fields added to every log record emitted with
// the enriched context.
type LogFields struct {
	WorkspaceID       *int64  // internal workspace id
	WorkspacePublicID *string // public id or slug used to address the workspace
	RunID             *string // client supplied run identifier
	MemberID          *int64
	UserID            *int64 // authenticated caller
	RequestID         *string
	Component         string // e.g. "launchloom.service.workspace"
}

// WithLogFields enriches ctx with fields. Repeated calls merge, newer
// non-empty values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields stored in ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.WorkspaceID != nil {
		result.WorkspaceID = next.WorkspaceID
	}
	if next.WorkspacePublicID != nil {
		result.WorkspacePublicID = next.WorkspacePublicID
	}
	if next.RunID != nil {
		result.RunID = next.RunID
	}
	if next.MemberID != nil {
		result.MemberID = next.MemberID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, handy for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}
