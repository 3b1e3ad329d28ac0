package domain

// PageResponse is the envelope every list endpoint returns. Pages are
// 0-based.
type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Number        int32 `json:"number"`
	Size          int32 `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int32 `json:"total_pages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// NewPageResponse wraps an already-executed paged query result.
func NewPageResponse[T any](content []T, page, size int32, total int64) PageResponse[T] {
	if content == nil {
		content = []T{}
	}
	var totalPages int32
	if size > 0 {
		totalPages = int32((total + int64(size) - 1) / int64(size))
	}
	return PageResponse[T]{
		Content:       content,
		Number:        page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page+1 >= totalPages,
	}
}
