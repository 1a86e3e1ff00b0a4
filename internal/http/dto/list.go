package dto

// ListResponse is the envelope for paginated collections. Total counts every
// matching row, not just the returned page.
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

func NewListResponse[S any, T any](items []S, total int64, convert func(S) T) ListResponse[T] {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return ListResponse[T]{Items: out, Total: total}
}
